package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/berlin-clock/internal/service/server"
	"github.com/oshokin/berlin-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// strict selects strict parsing when the flag is set explicitly.
	strict bool
	// logLevel of the server process.
	logLevel string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "berlin-clock-server [listen-address]",
		Short: "Serve Berlin clock conversions over gRPC.",
		Long: `Starts the gRPC server exposing berlinclock.v1.BerlinClockService.

ConvertTime returns the five-line Y/R/O text, GetDisplay returns the rows by name.
The server listens on the specified address or on the port of server_addr
from the configuration file (e.g., :50051).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				LogLevel:      logLevel,
			}

			if cmd.Flags().Changed("strict") {
				options.Strict = &strict
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the berlin-clock-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default berlin-clock-settings.yaml if present)")
	rootCmd.Flags().BoolVar(&strict, "strict", true, "accept only HH:MM:SS time strings")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
