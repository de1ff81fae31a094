// Package clock contains the Berlin clock domain model.
//
// A Display is five fixed-length rows of lamps computed from a wall-clock Time.
// Compute is a pure function: the same Time always yields the same Display.
package clock
