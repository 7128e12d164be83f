// Package metrics exposes the Prometheus collectors reported by the server:
// blob store latency and volume, and the outcome of every capability URL.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "atelier"

// Capability outcomes.
const (
	CapabilityIssued      = "issued"
	CapabilityUnavailable = "unavailable"
	CapabilityFailed      = "failed"
)

// Metrics groups the server collectors. A nil *Metrics is valid and records
// nothing, which keeps tests and tools free of registry setup.
type Metrics struct {
	blobOpDuration *prometheus.HistogramVec
	blobBytes      prometheus.Counter
	capabilities   *prometheus.CounterVec
	shareRotations prometheus.Counter
}

// MustNew builds the collectors and registers them with reg, panicking on a
// duplicate registration. A nil reg means prometheus.DefaultRegisterer.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		blobOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "blobstore",
				Name:      "operation_duration_seconds",
				Help:      "Duration of blob store calls by operation and outcome.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op", "status"},
		),
		blobBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "blobstore",
				Name:      "uploaded_bytes_total",
				Help:      "Bytes successfully written to the blob store.",
			},
		),
		capabilities: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "capability",
				Name:      "requests_total",
				Help:      "Signed read URL requests by outcome.",
			},
			[]string{"result"},
		),
		shareRotations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sharelink",
				Name:      "rotations_total",
				Help:      "Share tokens issued by rotation.",
			},
		),
	}

	reg.MustRegister(m.blobOpDuration, m.blobBytes, m.capabilities, m.shareRotations)
	return m
}

// ObserveBlobOp records one blob store call that started at start.
func (m *Metrics) ObserveBlobOp(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.blobOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddUploadedBytes(n int) {
	if m == nil {
		return
	}
	m.blobBytes.Add(float64(n))
}

// CapabilityResult counts one capability request; result is one of the
// Capability* constants.
func (m *Metrics) CapabilityResult(result string) {
	if m == nil {
		return
	}
	m.capabilities.WithLabelValues(result).Inc()
}

func (m *Metrics) ShareRotated() {
	if m == nil {
		return
	}
	m.shareRotations.Inc()
}
