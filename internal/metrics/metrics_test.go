package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Request("ok", 10*time.Millisecond)
	m.Request("ok", 20*time.Millisecond)
	m.Request("invalid", time.Millisecond)
	m.Rank(12, true)
	m.Rank(100, false)
	m.Skipped(0)
	m.Skipped(3)
	m.SegmentCount(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotConvergedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ChunksSkippedTotal))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Request("ok", time.Second)
		m.Rank(1, false)
		m.Skipped(2)
		m.SegmentCount(1)
	})
}
