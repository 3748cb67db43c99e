package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRecompute(OutcomeOK, 20*time.Millisecond)
	m.ObserveRecompute(OutcomeOK, 10*time.Millisecond)
	m.ObserveRecompute(OutcomeInvalid, time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.recomputes.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recomputes.WithLabelValues(OutcomeInvalid)))

	m.SetIndicator("op-1", "3C", 3)
	m.SetIndicator("op-1", "2C", 2)
	assert.Equal(t, 1, testutil.CollectAndCount(m.indicator))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.indicator.WithLabelValues("op-1", "2C")))

	m.FindingOpened(2)
	m.FindingCompleted()
	m.JobFinished("completed")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findingsOpened.WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.findingsClosed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobs.WithLabelValues("completed")))
}
