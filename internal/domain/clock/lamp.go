package clock

// Lamp is the state of a single lamp on the clock face.
type Lamp uint8

const (
	// Off is an unlit lamp.
	Off Lamp = iota
	// Yellow is a lamp lit yellow.
	Yellow
	// Red is a lamp lit red.
	Red
)

// Symbol returns the single-character code used in the text layout.
func (l Lamp) Symbol() byte {
	switch l {
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	default:
		return 'O'
	}
}

// String implements fmt.Stringer.
func (l Lamp) String() string {
	return string(l.Symbol())
}

// IsLit reports whether the lamp is switched on.
func (l Lamp) IsLit() bool {
	return l != Off
}

// Row is an ordered sequence of lamps.
type Row []Lamp

// Lit returns the number of lit lamps in the row.
func (r Row) Lit() int {
	lit := 0

	for _, lamp := range r {
		if lamp.IsLit() {
			lit++
		}
	}

	return lit
}

// String returns the row's lamp symbols concatenated, e.g. "RROO".
func (r Row) String() string {
	symbols := make([]byte, len(r))
	for i, lamp := range r {
		symbols[i] = lamp.Symbol()
	}

	return string(symbols)
}
