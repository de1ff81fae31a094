// Package timeparse turns HH:MM:SS strings into clock times.
//
// Two modes are supported. Strict accepts exactly HH:MM:SS. Lenient also
// accepts HH:MM and a fractional second suffix, the way an ISO local-time
// parser does. Both modes accept the literal end-of-day value 24:00:00.
package timeparse
