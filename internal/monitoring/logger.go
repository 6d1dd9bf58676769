// Package monitoring holds the process-wide diagnostic logger. Geometry
// fallbacks and non-fatal export problems report through it so the CLI
// stays usable while tests can mute or capture the output.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// and may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, which silences diagnostics entirely.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Warnf logs a non-fatal problem. The build continues; the message tells
// the operator what degraded.
func Warnf(format string, v ...interface{}) {
	Logf("warning: "+format, v...)
}
