// Package logger wraps zap with a global sugared logger and context helpers.
//
// Log lines go to stderr so that stdout stays reserved for rendered clocks.
// Code extracts the logger from a context (FromContext) which lets callers
// scope it with WithName and WithKV.
package logger
