package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid_input"
	OutcomeError   = "error"
)

// Metrics holds the service collectors. Register once per registry.
type Metrics struct {
	recomputes       *prometheus.CounterVec
	recomputeSeconds prometheus.Histogram
	indicator        *prometheus.GaugeVec
	findingsOpened   *prometheus.CounterVec
	findingsClosed   prometheus.Counter
	jobs             *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		recomputes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rbs_recomputes_total",
			Help: "RBS recomputes by outcome.",
		}, []string{"outcome"}),
		recomputeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rbs_recompute_duration_seconds",
			Help:    "Time to recompute and persist an operator.",
			Buckets: prometheus.DefBuckets,
		}),
		indicator: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rbs_risk_indicator_level",
			Help: "Current risk indicator level (1-5) per operator.",
		}, []string{"operator_id", "category_key"}),
		findingsOpened: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rbs_findings_opened_total",
			Help: "Surveillance findings opened by category level.",
		}, []string{"category"}),
		findingsClosed: f.NewCounter(prometheus.CounterOpts{
			Name: "rbs_findings_completed_total",
			Help: "Surveillance findings completed.",
		}),
		jobs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rbs_recompute_jobs_total",
			Help: "Recompute jobs processed by final status.",
		}, []string{"status"}),
	}
}

func (m *Metrics) ObserveRecompute(outcome string, d time.Duration) {
	m.recomputes.WithLabelValues(outcome).Inc()
	m.recomputeSeconds.Observe(d.Seconds())
}

// SetIndicator records the level of an operator, replacing the series of its
// previous category key.
func (m *Metrics) SetIndicator(operatorID, categoryKey string, level int) {
	m.indicator.DeletePartialMatch(prometheus.Labels{"operator_id": operatorID})
	m.indicator.WithLabelValues(operatorID, categoryKey).Set(float64(level))
}

func (m *Metrics) FindingOpened(level int) {
	m.findingsOpened.WithLabelValues(strconv.Itoa(level)).Inc()
}

func (m *Metrics) FindingCompleted() { m.findingsClosed.Inc() }

func (m *Metrics) JobFinished(status string) { m.jobs.WithLabelValues(status).Inc() }
