package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew(reg)

	m.ObserveBlobOp("put", time.Now(), nil)
	m.ObserveBlobOp("put", time.Now(), errors.New("boom"))
	m.AddUploadedBytes(2048)
	m.CapabilityResult(CapabilityIssued)
	m.CapabilityResult(CapabilityIssued)
	m.CapabilityResult(CapabilityUnavailable)
	m.ShareRotated()

	assert.Equal(t, 2048.0, testutil.ToFloat64(m.blobBytes))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.capabilities.WithLabelValues(CapabilityIssued)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.capabilities.WithLabelValues(CapabilityUnavailable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shareRotations))
	assert.Equal(t, 2, testutil.CollectAndCount(m.blobOpDuration))
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNew(reg)
	require.Panics(t, func() { MustNew(reg) })
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveBlobOp("remove", time.Now(), nil)
		m.AddUploadedBytes(1)
		m.CapabilityResult(CapabilityFailed)
		m.ShareRotated()
	})
}
