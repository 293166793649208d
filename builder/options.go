// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before map construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is shared across calls, so two BuildMap calls with the same
// *rand.Rand produce different maps.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed each time the options
// are resolved, so every BuildMap call with WithSeed(s) yields the same map.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the placement rectangle. Max is exclusive.
// Panics on NaN/Inf corners or when the rectangle is empty (Max ≤ Min on
// either axis).
func WithBounds(b orb.Bound) BuilderOption {
	for _, v := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("builder: WithBounds(non-finite corner)")
		}
	}
	if b.Max[0] <= b.Min[0] || b.Max[1] <= b.Min[1] {
		panic("builder: WithBounds(empty rectangle)")
	}
	return func(c *builderConfig) {
		c.bounds = b
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// Generated weights must be > 0; otherwise RandomEdges fails with
// ErrConstructFailed.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange sets weights ∼ U{min..max} via UniformWeightFn.
// Panics unless 1 ≤ min ≤ max ≤ core.MaxWeight.
func WithWeightRange(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithMaxAttempts caps the number of (u, v) draws RandomEdges may make.
// Panics if k < 1.
func WithMaxAttempts(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMaxAttempts(k<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = k
	}
}

// WithIntegerCoords floors generated coordinates to whole numbers.
func WithIntegerCoords() BuilderOption {
	return func(c *builderConfig) {
		c.integerCoords = true
	}
}

// WithLogger attaches a logger for generation diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithStats makes RandomEdges accumulate its counters into s. Panics on nil.
func WithStats(s *Stats) BuilderOption {
	if s == nil {
		panic("builder: WithStats(nil)")
	}
	return func(c *builderConfig) {
		c.stats = s
	}
}
