//go:build windows

package render

// LineSeparator is the host platform's line terminator.
const LineSeparator = "\r\n"
