// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng           = nil → BuildMap seeds one from the wall clock
//   • bounds        = [50,800) × [50,600)
//   • weightFn      = UniformWeightFn(1, 20)
//   • maxAttempts   = 0   → max(DefaultMinAttempts, AttemptsPerEdge*e) per RandomEdges call
//   • integerCoords = false
//   • logger        = zap.NewNop()
//   • stats         = nil

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for every stochastic choice; resolved by BuildMap when nil.
	rng *rand.Rand
	// Placement rectangle; Max is exclusive.
	bounds orb.Bound
	// Weight generator; must return values > 0.
	weightFn WeightFn
	// Draw budget for RandomEdges; 0 means derived from the edge count.
	maxAttempts int
	// Floor generated coordinates to integers.
	integerCoords bool

	logger *zap.Logger
	stats  *Stats
}

// Stats receives generation counters when passed through WithStats.
type Stats struct {
	// Attempts is the number of (u, v) draws made by RandomEdges.
	Attempts int
	// Rejected counts draws discarded as self-pairs or duplicates.
	Rejected int
	// Edges is the number of edges placed by RandomEdges.
	Edges int
}

// DefaultBounds returns the default placement rectangle.
func DefaultBounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{DefaultMinX, DefaultMinY},
		Max: orb.Point{DefaultMaxX, DefaultMaxY},
	}
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		bounds:   DefaultBounds(),
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// attemptBudget returns the number of draws RandomEdges may spend placing e edges.
func (c builderConfig) attemptBudget(e int) int {
	if c.maxAttempts > 0 {
		return c.maxAttempts
	}
	if budget := AttemptsPerEdge * e; budget > DefaultMinAttempts {
		return budget
	}

	return DefaultMinAttempts
}
