package converter

import (
	"context"
	"errors"

	"github.com/oshokin/berlin-clock/internal/domain/clock"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/render"
	"github.com/oshokin/berlin-clock/internal/timeparse"
)

// Options configures a Converter.
type Options struct {
	// Mode selects strict or lenient parsing.
	Mode timeparse.Mode
	// Renderer serializes the display; plain text when nil.
	Renderer render.Renderer
}

// Converter converts time strings into rendered clock faces.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	// mode is the parsing mode.
	mode timeparse.Mode
	// renderer serializes computed displays.
	renderer render.Renderer
}

// New creates a converter with the provided options.
func New(opts Options) *Converter {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.Plain{}
	}

	return &Converter{
		mode:     opts.Mode,
		renderer: renderer,
	}
}

// Mode returns the parsing mode of the converter.
func (c *Converter) Mode() timeparse.Mode {
	return c.mode
}

// Display parses s and computes the clock face.
//
// In lenient mode an empty string is logged and yields the blank display;
// every other parse failure is returned as *timeparse.ParseError.
func (c *Converter) Display(ctx context.Context, s string) (clock.Display, error) {
	t, err := timeparse.Parse(s, c.mode)
	if err != nil {
		if c.mode == timeparse.Lenient && errors.Is(err, timeparse.ErrEmptyInput) {
			logger.Error(ctx, "Input string empty")

			return clock.Blank(), nil
		}

		return clock.Display{}, err
	}

	display := clock.Compute(t)

	logger.DebugKV(ctx, "Display computed", "time", t.String(), "display", display.String())

	return display, nil
}

// ConvertTime parses s, computes the clock face and renders it.
func (c *Converter) ConvertTime(ctx context.Context, s string) (string, error) {
	display, err := c.Display(ctx, s)
	if err != nil {
		return "", err
	}

	return c.renderer.Render(display), nil
}

// ConvertTime converts s with strict parsing and plain text output.
func ConvertTime(s string) (string, error) {
	return New(Options{Mode: timeparse.Strict}).ConvertTime(context.Background(), s)
}
