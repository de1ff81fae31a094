// Package server runs the berlin-clock-server process: it loads settings,
// builds a converter and serves BerlinClockService over gRPC until the
// context is canceled.
package server
