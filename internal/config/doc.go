// Package config defines the settings shared by the berlin-clock binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Values are layered: built-in defaults, then the YAML file, then BERLIN_CLOCK_*
// environment variables (optionally from a .env file). Command-line flags are
// applied on top by the callers.
package config
