package clock

import (
	"fmt"
	"strings"
)

// Row lengths of the clock face.
const (
	SecondsLamps      = 1
	HoursTensLamps    = 4
	HoursUnitsLamps   = 4
	MinutesTensLamps  = 11
	MinutesUnitsLamps = 4
)

// Time is a wall-clock time accepted by the clock.
// Hour ranges over 0..24, where 24 is only valid as 24:00:00.
type Time struct {
	// Hour of the day, 0..24.
	Hour int
	// Minute of the hour, 0..59.
	Minute int
	// Second of the minute, 0..59.
	Second int
}

// String formats the time as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Display is the full clock face at one point in time.
type Display struct {
	// Seconds is the blinking lamp on top, lit on even seconds.
	Seconds Lamp
	// HoursTens holds one red lamp per five full hours.
	HoursTens Row
	// HoursUnits holds one red lamp per remaining hour.
	HoursUnits Row
	// MinutesTens holds one lamp per five full minutes, quarter hours in red.
	MinutesTens Row
	// MinutesUnits holds one yellow lamp per remaining minute.
	MinutesUnits Row
}

// Rows returns the five rows in display order, seconds first.
func (d Display) Rows() []Row {
	return []Row{
		{d.Seconds},
		d.HoursTens,
		d.HoursUnits,
		d.MinutesTens,
		d.MinutesUnits,
	}
}

// String returns a debug representation of the display.
func (d Display) String() string {
	var sb strings.Builder

	sb.WriteString("Display{seconds=")
	sb.WriteString(d.Seconds.String())

	for _, field := range []struct {
		name string
		row  Row
	}{
		{"hoursTens", d.HoursTens},
		{"hoursUnits", d.HoursUnits},
		{"minutesTens", d.MinutesTens},
		{"minutesUnits", d.MinutesUnits},
	} {
		fmt.Fprintf(&sb, ", %s=%v", field.name, []Lamp(field.row))
	}

	sb.WriteString("}")

	return sb.String()
}

// Blank returns a display with every lamp switched off.
func Blank() Display {
	return Display{
		Seconds:      Off,
		HoursTens:    make(Row, HoursTensLamps),
		HoursUnits:   make(Row, HoursUnitsLamps),
		MinutesTens:  make(Row, MinutesTensLamps),
		MinutesUnits: make(Row, MinutesUnitsLamps),
	}
}
