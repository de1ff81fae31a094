// Package version exposes build metadata of the berlin-clock binaries.
//
// Version, Commit and BuildTime are injected with -ldflags "-X ..." at build
// time and keep their placeholders for local builds.
package version
