// Package render serializes a clock display to text.
package render
