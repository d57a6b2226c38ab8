package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exports request outcomes and latencies as Prometheus
// metrics under the "stripekit" namespace.
type PrometheusRecorder struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the client metrics on the default registry.
func NewPrometheusRecorder() Recorder {
	return NewPrometheusRecorderWith(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWith registers the client metrics on the given
// registerer.
func NewPrometheusRecorderWith(reg prometheus.Registerer) Recorder {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stripekit",
			Name:      "requests_total",
			Help:      "Completed API requests by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	durations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stripekit",
			Name:      "request_duration_seconds",
			Help:      "API request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	reg.MustRegister(requests, durations)

	return &PrometheusRecorder{
		requests:  requests,
		durations: durations,
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.requests.With(prometheus.Labels{
		"method":  labels["method"],
		"outcome": name,
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.durations.With(prometheus.Labels{
		"method": labels["method"],
	}).Observe(d.Seconds())
}
