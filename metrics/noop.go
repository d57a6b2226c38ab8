package metrics

import "time"

// NopRecorder ignores all events. It is the default.
type NopRecorder struct{}

func (NopRecorder) IncCounter(string, map[string]string)                    {}
func (NopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
