// Package metrics defines the instrumentation hooks the stripekit client
// emits into. The default recorder discards everything; use
// NewPrometheusRecorder to export request counts and latencies.
package metrics

import "time"

// Recorder receives one event per completed request. Implementations must be
// safe for concurrent use.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
