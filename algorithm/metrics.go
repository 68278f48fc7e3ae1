// File: metrics.go
// Role: Prometheus instruments for decomposition runs.
//
// All methods accept a nil *Metrics and do nothing, so decomposers record
// unconditionally.

package algorithm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "treedec"
	metricsSubsystem = "algorithm"
)

// Metrics groups the instruments of every decomposer sharing it.
type Metrics struct {
	decompositions *prometheus.CounterVec
	nodesCreated   *prometheus.CounterVec
	nodesRemoved   *prometheus.CounterVec
	width          *prometheus.HistogramVec
	stageDuration  *prometheus.HistogramVec
}

// NewMetrics creates the instruments and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		decompositions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "decompositions_total",
				Help:      "Number of ComputeDecomposition calls by decomposition kind and outcome",
			},
			[]string{"kind", "status"},
		),
		nodesCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "nodes_created_total",
				Help:      "Decomposition nodes created by manipulation operations",
			},
			[]string{"kind", "operation"},
		),
		nodesRemoved: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "nodes_removed_total",
				Help:      "Decomposition nodes removed by manipulation operations",
			},
			[]string{"kind", "operation"},
		),
		width: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "width",
				Help:      "Width (largest bag size minus one) of computed decompositions",
				Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
			},
			[]string{"kind"},
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "stage_duration_seconds",
				Help:      "Time spent per pipeline stage",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind", "stage"},
		),
	}
}

func (m *Metrics) observeRun(kind string, width int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.decompositions.WithLabelValues(kind, "error").Inc()
		return
	}
	m.decompositions.WithLabelValues(kind, "ok").Inc()
	m.width.WithLabelValues(kind).Observe(float64(width))
}

func (m *Metrics) observeStage(kind, stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(kind, stage).Observe(d.Seconds())
}

func (m *Metrics) observeChanges(kind, op string, created, removed int) {
	if m == nil {
		return
	}
	if created > 0 {
		m.nodesCreated.WithLabelValues(kind, op).Add(float64(created))
	}
	if removed > 0 {
		m.nodesRemoved.WithLabelValues(kind, op).Add(float64(removed))
	}
}
