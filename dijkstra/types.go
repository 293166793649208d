// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– Source:           ID of the starting node (required, must lie in [0, N)).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never set.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Source was not supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source (or a PathTo target) is
	// outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that PathTo was asked for an unreachable node.
	ErrNoPath = errors.New("dijkstra: node not reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for nodes not reached from Source.
const Unreachable int64 = math.MaxInt64

// noSource marks Options.Source as unset.
const noSource = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node ID.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Default math.MaxInt64.
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Default math.MaxInt64 (no obstacles).
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. Must be supplied.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Panics on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no caps and no
// predecessor output.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
