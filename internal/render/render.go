package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/berlin-clock/internal/domain/clock"
)

// Renderer turns a display into text.
type Renderer interface {
	Render(d clock.Display) string
}

// Format names an output format.
type Format string

const (
	// FormatPlain is one line of Y/R/O symbols per row.
	FormatPlain Format = "plain"
	// FormatColor draws the lamps with terminal colours.
	FormatColor Format = "color"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name. An empty name means plain.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatColor:
		return FormatColor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// New returns the renderer for format. The colour renderer detects the
// terminal capabilities of w.
//
//nolint:ireturn // Callers pick the implementation by name.
func New(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case "", FormatPlain:
		return Plain{}, nil
	case FormatColor:
		return NewColor(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Plain renders five lines of Y/R/O symbols joined by LineSeparator.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(d clock.Display) string {
	rows := d.Rows()
	lines := make([]string, len(rows))

	for i, row := range rows {
		lines[i] = row.String()
	}

	return strings.Join(lines, LineSeparator)
}
