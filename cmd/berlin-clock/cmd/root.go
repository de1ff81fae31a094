package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/service/convert"
	"github.com/oshokin/berlin-clock/internal/version"
)

var (
	// configPath stores the configuration file path.
	configPath string
	// strict selects strict parsing when the flag is set explicitly.
	strict bool
	// format selects the output format.
	format string
	// serverAddress enables remote conversion.
	serverAddress string
	// logLevel overrides the configured log level.
	logLevel string
	// watch keeps rendering the current time.
	watch bool

	// rootCmd represents the base command for converting a time.
	rootCmd = &cobra.Command{
		Use:   "berlin-clock [HH:MM:SS]",
		Short: "Show a time of day as a Berlin clock.",
		Long: `Converts a 24-hour time into the lamp rows of the Berlin clock.

Prints five lines: the seconds lamp, two hour rows and two minute rows,
where Y is a yellow lamp, R a red lamp and O a lamp that is off.
24:00:00 is accepted as the end of the day. Without an argument the current
local time is shown; --watch refreshes it every second until interrupted.

With --server the conversion is done by berlin-clock-server over gRPC.`,
		Example: `  berlin-clock 13:17:01
  berlin-clock --format color
  berlin-clock --strict=false 12:30`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &convert.Options{
				ConfigPath:    configPath,
				Format:        format,
				ServerAddress: serverAddress,
				LogLevel:      logLevel,
				Watch:         watch,
				Out:           cmd.OutOrStdout(),
			}

			// Time argument is optional; an explicit empty string still counts.
			if len(args) > 0 {
				options.Time = args[0]
				options.HasTime = true
			}

			// Only an explicit flag overrides the settings file.
			if cmd.Flags().Changed("strict") {
				options.Strict = &strict
			}

			return convert.Run(ctx, options)
		},
	}
)

// Execute runs the berlin-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file (default berlin-clock-settings.yaml if present)")
	flags.BoolVar(&strict, "strict", true, "accept only HH:MM:SS; false also accepts HH:MM, fractions and renders a blank clock for empty input")
	flags.StringVarP(&format, "format", "f", "", "output format: plain or color")
	flags.StringVarP(&serverAddress, "server", "s", "", "convert on berlin-clock-server at this address")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&watch, "watch", "w", false, "refresh the current time every second")
}
