package observability

import (
	"errors"
	"time"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for decode results.
const (
	OutcomeOK            = "ok"
	OutcomeParseError    = "parse_error"
	OutcomeIndeterminate = "indeterminate"
	OutcomeOutOfCanvas   = "out_of_canvas"
	OutcomeError         = "error"
)

// Metrics groups the decoder collectors.
type Metrics struct {
	Decodes     *prometheus.CounterVec
	Duration    prometheus.Histogram
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	PathCells   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "piratemap_decodes_total",
				Help: "Total number of decode attempts by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "piratemap_decode_duration_seconds",
			Help:    "Duration of map decodes",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piratemap_render_cache_hits_total",
			Help: "Renders served from the cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "piratemap_render_cache_misses_total",
			Help: "Renders computed because the cache had no entry",
		}),
		PathCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "piratemap_path_cells",
			Help:    "Number of cells in traced paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Decodes, m.Duration, m.CacheHits, m.CacheMisses, m.PathCells)
	}
	return m
}

// ObserveDecode records one decode attempt.
func (m *Metrics) ObserveDecode(start time.Time, err error) {
	if m == nil {
		return
	}
	m.Duration.Observe(time.Since(start).Seconds())
	m.Decodes.WithLabelValues(Outcome(err)).Inc()
}

// ObservePath records the size of a traced path.
func (m *Metrics) ObservePath(cells int) {
	if m == nil {
		return
	}
	m.PathCells.Observe(float64(cells))
}

// ObserveCache records a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}

// Outcome classifies err into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrParse):
		return OutcomeParseError
	case errors.Is(err, domain.ErrIndeterminateTreasure):
		return OutcomeIndeterminate
	case errors.Is(err, domain.ErrOutOfCanvas):
		return OutcomeOutOfCanvas
	default:
		return OutcomeError
	}
}
