package timeparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oshokin/berlin-clock/internal/domain/clock"
)

// Mode selects how permissive the parser is.
type Mode uint8

const (
	// Strict accepts exactly HH:MM:SS.
	Strict Mode = iota
	// Lenient additionally accepts HH:MM and HH:MM:SS.fffffffff.
	Lenient
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}

	return "strict"
}

// ModeFromStrict maps a strict flag to a Mode.
func ModeFromStrict(strict bool) Mode {
	if strict {
		return Strict
	}

	return Lenient
}

// EndOfDay is the only accepted time with hour 24.
const EndOfDay = "24:00:00"

const (
	// maxHour is the largest hour accepted, and only as 24:00:00.
	maxHour = 24
	// maxMinute is the largest minute or second value.
	maxMinute = 59
	// maxFractionDigits is the longest fractional second suffix in lenient mode.
	maxFractionDigits = 9
)

var (
	// ErrEmptyInput is returned for an empty time string.
	ErrEmptyInput = errors.New("input string empty")
	// ErrMalformed is returned when the string does not have the HH:MM:SS shape.
	ErrMalformed = errors.New("malformed time")
	// ErrOutOfRange is returned when a field is outside its range.
	ErrOutOfRange = errors.New("time field out of range")
)

// ParseError describes an input string that is not a valid time.
type ParseError struct {
	// Input is the offending string.
	Input string
	// Err is one of ErrEmptyInput, ErrMalformed or ErrOutOfRange, possibly wrapped.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts s into a clock.Time using the given mode.
// Every failure is a *ParseError.
func Parse(s string, mode Mode) (clock.Time, error) {
	if s == "" {
		return clock.Time{}, &ParseError{Input: s, Err: ErrEmptyInput}
	}

	if s == EndOfDay {
		return clock.Time{Hour: maxHour}, nil
	}

	t, err := parseFields(s, mode)
	if err != nil {
		return clock.Time{}, &ParseError{Input: s, Err: err}
	}

	return t, nil
}

// parseFields splits s into hour, minute and second and validates each field.
func parseFields(s string, mode Mode) (clock.Time, error) {
	fields := strings.Split(s, ":")

	var (
		second   string
		fraction string
	)

	switch {
	case len(fields) == 3:
		second = fields[2]
	case len(fields) == 2 && mode == Lenient:
		second = "00"
	default:
		return clock.Time{}, fmt.Errorf("%w: expected HH:MM:SS", ErrMalformed)
	}

	if mode == Lenient {
		if whole, frac, found := strings.Cut(second, "."); found {
			if frac == "" || len(frac) > maxFractionDigits || !isDigits(frac) {
				return clock.Time{}, fmt.Errorf("%w: bad fraction of second", ErrMalformed)
			}

			second, fraction = whole, frac
		}
	}

	hour, err := parseField("hour", fields[0], maxHour)
	if err != nil {
		return clock.Time{}, err
	}

	minute, err := parseField("minute", fields[1], maxMinute)
	if err != nil {
		return clock.Time{}, err
	}

	sec, err := parseField("second", second, maxMinute)
	if err != nil {
		return clock.Time{}, err
	}

	if hour == maxHour && (minute != 0 || sec != 0 || strings.Trim(fraction, "0") != "") {
		return clock.Time{}, fmt.Errorf("%w: hour 24 is only valid as %s", ErrOutOfRange, EndOfDay)
	}

	return clock.Time{Hour: hour, Minute: minute, Second: sec}, nil
}

// parseField parses a two-digit zero-padded field in the range 0..limit.
func parseField(name, value string, limit int) (int, error) {
	if len(value) != 2 || !isDigits(value) {
		return 0, fmt.Errorf("%w: %s must be two digits", ErrMalformed, name)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}

	if n > limit {
		return 0, fmt.Errorf("%w: %s %d exceeds %d", ErrOutOfRange, name, n, limit)
	}

	return n, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
