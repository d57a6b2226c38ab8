// Package logger defines the logging interface used by the stripekit client
// and a zap-backed implementation of it. The client logs nothing by default;
// pass a Logger via stripekit.WithLogger to see request-level activity.
package logger

// Logger receives diagnostic output from the client. Implementations must be
// safe for concurrent use.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]any) {}
func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Warn(string, map[string]any)  {}
func (NopLogger) Error(string, map[string]any) {}
