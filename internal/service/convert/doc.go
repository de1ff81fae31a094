// Package convert runs the berlin-clock CLI: it converts one time string, or
// the current time, and writes the rendered clock to the output. Conversion
// happens in-process or, when a server address is given, on berlin-clock-server.
package convert
