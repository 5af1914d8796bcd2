package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors that report scoring runs.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	pairsParsed   prometheus.Counter
	stageDuration *prometheus.HistogramVec
	stageFailures *prometheus.CounterVec
	scores        *prometheus.GaugeVec
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Tests should pass a fresh registry; registration errors panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	pairsParsed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pairscore",
			Name:      "pairs_parsed_total",
			Help:      "Number of integer pairs read from input.",
		},
	)
	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pairscore",
			Name:      "stage_duration_seconds",
			Help:      "Duration spent in each pipeline stage.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
	stageFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pairscore",
			Name:      "stage_failures_total",
			Help:      "Number of pipeline stages that returned an error.",
		},
		[]string{"stage"},
	)
	scores := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "pairscore",
			Name:      "score",
			Help:      "Most recent score by kind.",
		},
		[]string{"kind"},
	)

	reg.MustRegister(pairsParsed, stageDuration, stageFailures, scores)

	return &Metrics{
		pairsParsed:   pairsParsed,
		stageDuration: stageDuration,
		stageFailures: stageFailures,
		scores:        scores,
	}
}

// AddPairs records n parsed pairs
func (m *Metrics) AddPairs(n int) {
	if m == nil {
		return
	}
	m.pairsParsed.Add(float64(n))
}

// ObserveStage records how long stage took and whether it failed
func (m *Metrics) ObserveStage(stage string, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(took.Seconds())
	if err != nil {
		m.stageFailures.WithLabelValues(stage).Inc()
	}
}

// SetScore records the latest score of a kind (distance, similarity)
func (m *Metrics) SetScore(kind string, value int) {
	if m == nil {
		return
	}
	m.scores.WithLabelValues(kind).Set(float64(value))
}

// WriteTextfile writes everything gathered by g to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
