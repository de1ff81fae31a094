package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/render"
)

// Config holds the settings shared by the berlin-clock binaries.
type Config struct {
	// Strict selects strict HH:MM:SS parsing; false enables the lenient parser.
	Strict bool `yaml:"strict" env:"BERLIN_CLOCK_STRICT"`
	// Format is the output format of the CLI: plain or color.
	Format string `yaml:"format" env:"BERLIN_CLOCK_FORMAT"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `yaml:"log_level" env:"BERLIN_CLOCK_LOG_LEVEL"`
	// ServerAddress is the gRPC address of berlin-clock-server.
	ServerAddress string `yaml:"server_addr,omitempty" env:"BERLIN_CLOCK_SERVER_ADDR"`
	// Timeout bounds every RPC call.
	Timeout time.Duration `yaml:"timeout" env:"BERLIN_CLOCK_TIMEOUT"`
}

const (
	// DefaultConfigFilename is the settings file looked up when no path is given.
	DefaultConfigFilename = "berlin-clock-settings.yaml"

	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the file permission for saved settings.
	DefaultFilePermissions = 0o600

	// dotEnvFilename is loaded into the environment when present.
	dotEnvFilename = ".env"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for an unknown log level name.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Strict:   true,
		Format:   string(render.FormatPlain),
		LogLevel: DefaultLogLevel,
		Timeout:  DefaultTimeout,
	}
}

// Load reads settings from path on top of the defaults and applies
// environment overrides. An empty path means DefaultConfigFilename, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = loadDotEnv(); err != nil {
		return nil, err
	}

	if err = env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	cfg.Format = string(format)

	if cfg.ServerAddress == "" {
		return nil
	}

	return ValidateAddress(cfg.ServerAddress)
}

// ValidateAddress checks that address is a host:port pair with a numeric port.
// The host may be empty to listen on all interfaces.
func ValidateAddress(address string) error {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if _, err = strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("invalid server port %q: %w", port, err)
	}

	return nil
}

// loadDotEnv exports variables from a .env file in the working directory.
// Variables already set in the environment win.
func loadDotEnv() error {
	if _, err := os.Stat(dotEnvFilename); err != nil {
		return nil //nolint:nilerr // A missing .env file is the normal case.
	}

	if err := godotenv.Load(dotEnvFilename); err != nil {
		return fmt.Errorf("load %s: %w", dotEnvFilename, err)
	}

	return nil
}
