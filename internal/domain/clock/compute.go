package clock

// lampValue is the number of time units one lamp of a tens row stands for.
const lampValue = 5

// quarterEvery marks every third minutes-tens lamp (15, 30, 45 minutes) as red.
const quarterEvery = 3

// Compute maps a time to the lamps of the clock face.
// The input is expected to be validated; Compute does not check ranges.
func Compute(t Time) Display {
	return Display{
		Seconds:      secondsLamp(t.Second),
		HoursTens:    row(HoursTensLamps, t.Hour/lampValue, hourColor),
		HoursUnits:   row(HoursUnitsLamps, t.Hour%lampValue, hourColor),
		MinutesTens:  row(MinutesTensLamps, t.Minute/lampValue, minutesTensColor),
		MinutesUnits: row(MinutesUnitsLamps, t.Minute%lampValue, minutesUnitsColor),
	}
}

// secondsLamp is yellow on even seconds.
func secondsLamp(second int) Lamp {
	if second%2 == 0 {
		return Yellow
	}

	return Off
}

// row builds a row of the given length with the first lit lamps switched on,
// coloring lamp i with color(i).
func row(length, lit int, color func(i int) Lamp) Row {
	lamps := make(Row, length)

	for i := range lamps {
		if i < lit {
			lamps[i] = color(i)
		} else {
			lamps[i] = Off
		}
	}

	return lamps
}

func hourColor(int) Lamp {
	return Red
}

func minutesTensColor(i int) Lamp {
	if IsQuarter(i) {
		return Red
	}

	return Yellow
}

func minutesUnitsColor(int) Lamp {
	return Yellow
}

// IsQuarter reports whether the 0-based minutes-tens lamp at index i marks
// a quarter hour.
func IsQuarter(i int) bool {
	return (i+1)%quarterEvery == 0
}
