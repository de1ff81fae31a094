package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/converter"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/render"
	"github.com/oshokin/berlin-clock/internal/service/common"
	"github.com/oshokin/berlin-clock/internal/timeparse"
)

// Options configures a single CLI invocation.
type Options struct {
	// ConfigPath to YAML settings file; the default file is optional.
	ConfigPath string
	// Time is the HH:MM:SS string to convert. Ignored unless HasTime is set.
	Time string
	// HasTime reports whether Time was given on the command line.
	HasTime bool
	// Strict overrides the parsing mode from settings when not nil.
	Strict *bool
	// Format overrides the output format from settings when not empty.
	Format string
	// ServerAddress overrides the server from settings and enables remote conversion.
	ServerAddress string
	// LogLevel overrides the log level from settings when not empty.
	LogLevel string
	// Watch re-renders the current time every Interval until ctx is canceled.
	Watch bool
	// Interval between renders in watch mode, DefaultInterval when zero.
	Interval time.Duration
	// Now returns the current time, time.Now when nil.
	Now func() time.Time
	// Out receives the rendered clock.
	Out io.Writer
}

// timeConverter is implemented by the in-process converter and the gRPC client.
type timeConverter interface {
	ConvertTime(ctx context.Context, s string) (string, error)
}

const (
	// DefaultInterval is the refresh period of watch mode.
	DefaultInterval = time.Second

	// timeLayout formats the current time as HH:MM:SS.
	timeLayout = "15:04:05"
)

var (
	// errWatchWithTime is returned when watch mode is combined with a fixed time.
	errWatchWithTime = errors.New("watch mode renders the current time and takes no time argument")
	// errOutputRequired is returned when no writer is configured.
	errOutputRequired = errors.New("output writer must be provided")
)

// Run converts the requested time and writes the result to opts.Out.
//
//nolint:cyclop // Option layering is flat and easier to follow in one place.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "berlin-clock")

	if opts.Out == nil {
		return errOutputRequired
	}

	if opts.Watch && opts.HasTime {
		return errWatchWithTime
	}

	// Load settings, then let command line flags win.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = applyOverrides(cfg, opts); err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	conv, closeFn, err := newConverter(ctx, cfg, opts.Out)
	if err != nil {
		return err
	}

	defer closeFn()

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if !opts.Watch {
		input := opts.Time
		if !opts.HasTime {
			input = now().Format(timeLayout)
		}

		return convertAndPrint(ctx, conv, input, opts.Out)
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return watch(ctx, conv, now, interval, opts.Out)
}

// applyOverrides copies non-empty command line options into cfg and validates the result.
func applyOverrides(cfg *config.Config, opts *Options) error {
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}

	if opts.ServerAddress != "" {
		cfg.ServerAddress = opts.ServerAddress
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate options: %w", err)
	}

	return nil
}

// newConverter picks the remote client when a server address is configured,
// the in-process converter otherwise. The returned function releases resources.
//
//nolint:ireturn // Both implementations are used through the same small interface.
func newConverter(ctx context.Context, cfg *config.Config, out io.Writer) (timeConverter, func(), error) {
	if cfg.ServerAddress != "" {
		if cfg.Format != string(render.FormatPlain) {
			logger.WarnKV(ctx, "Remote conversion supports plain output only", "format", cfg.Format)
		}

		client, err := common.Dial(ctx, cfg.ServerAddress, common.WithCallTimeout(cfg.Timeout))
		if err != nil {
			return nil, nil, fmt.Errorf("dial server: %w", err)
		}

		logger.DebugKV(ctx, "Converting remotely", "server_address", cfg.ServerAddress)

		return client, func() { _ = client.Close() }, nil
	}

	renderer, err := render.New(render.Format(cfg.Format), out)
	if err != nil {
		return nil, nil, err
	}

	conv := converter.New(converter.Options{
		Mode:     timeparse.ModeFromStrict(cfg.Strict),
		Renderer: renderer,
	})

	return conv, func() {}, nil
}

// convertAndPrint converts input and writes it followed by a line break.
// Nothing is written when the conversion fails.
func convertAndPrint(ctx context.Context, conv timeConverter, input string, out io.Writer) error {
	text, err := conv.ConvertTime(ctx, input)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// watch renders the current time immediately and then on every tick until
// the context is canceled.
func watch(ctx context.Context, conv timeConverter, now func() time.Time, interval time.Duration, out io.Writer) error {
	logger.InfoKV(ctx, "Watching clock", "interval", interval.String())

	if err := convertAndPrint(ctx, conv, now().Format(timeLayout), out); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if err := convertAndPrint(ctx, conv, now().Format(timeLayout), out); err != nil {
				return err
			}
		}
	}
}
