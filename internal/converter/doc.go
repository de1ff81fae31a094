// Package converter is the single entry point that turns a time string into a
// rendered Berlin clock: parse, compute, render.
package converter
