// Package metrics records Prometheus metrics for map generation and route
// searches.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/builder"
)

// Namespace prefixes every metric name.
const Namespace = "astarmap"

// Label values of the search "status" label.
const (
	StatusFound       = "found"
	StatusUnreachable = "unreachable"
	StatusLimit       = "limit"
	StatusCancelled   = "cancelled"
	StatusError       = "error"
)

// Label values of the generation "result" label.
const (
	ResultOK        = "ok"
	ResultExhausted = "exhausted"
	ResultError     = "error"
)

// Recorder owns the collectors registered on one prometheus.Registerer.
type Recorder struct {
	searches       *prometheus.CounterVec
	searchExpanded prometheus.Histogram
	searchDuration prometheus.Histogram
	pathCost       prometheus.Histogram

	generations        *prometheus.CounterVec
	generationAttempts prometheus.Histogram
	generationRejected prometheus.Counter
}

// NewRecorder creates and registers the collectors on reg. Registering twice
// on the same registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Route searches by outcome.",
		}, []string{"status"}),
		searchExpanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "expanded_nodes",
			Help:      "Nodes closed per completed search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time per search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		pathCost: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "path_cost",
			Help:      "Total weight of found paths.",
			Buckets:   prometheus.LinearBuckets(0, 20, 10),
		}),
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "generation",
			Name:      "total",
			Help:      "Map generations by result.",
		}, []string{"result"}),
		generationAttempts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "generation",
			Name:      "attempts",
			Help:      "Pair draws spent placing edges.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
		generationRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "generation",
			Name:      "rejected_pairs_total",
			Help:      "Pair draws rejected as self-pairs or duplicates.",
		}),
	}
}

// SearchStatus maps a FindPath outcome to its "status" label value.
func SearchStatus(res *astar.Result, err error) string {
	switch {
	case errors.Is(err, astar.ErrExpansionLimit):
		return StatusLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCancelled
	case err != nil || res == nil:
		return StatusError
	case res.Found():
		return StatusFound
	default:
		return StatusUnreachable
	}
}

// ObserveSearch records one FindPath call that took d.
func (r *Recorder) ObserveSearch(res *astar.Result, err error, d time.Duration) {
	status := SearchStatus(res, err)
	r.searches.WithLabelValues(status).Inc()
	r.searchDuration.Observe(d.Seconds())
	if err != nil || res == nil {
		return
	}
	r.searchExpanded.Observe(float64(res.Expanded))
	if res.Found() {
		r.pathCost.Observe(float64(res.Cost))
	}
}

// ObserveGeneration records one map generation with its edge-placement stats.
func (r *Recorder) ObserveGeneration(st builder.Stats, err error) {
	switch {
	case err == nil:
		r.generations.WithLabelValues(ResultOK).Inc()
	case errors.Is(err, builder.ErrGenerationExhausted):
		r.generations.WithLabelValues(ResultExhausted).Inc()
	default:
		r.generations.WithLabelValues(ResultError).Inc()
	}
	if st.Attempts > 0 {
		r.generationAttempts.Observe(float64(st.Attempts))
	}
	r.generationRejected.Add(float64(st.Rejected))
}

// WriteText writes everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
