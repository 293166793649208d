// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(n, bopts, cons...). Allocates n nodes, resolves cfg, runs cons in order, seals.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/astarmap/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng, in a documented order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildMap allocates a core.Builder of n nodes, resolves the builder
// configuration from bopts, applies all constructors in order and seals the
// result into an immutable *core.Graph.
//
// When neither WithSeed nor WithRand is given, a fresh RNG is seeded from the
// wall clock for this call.
//
// Errors:
//   - ErrTooFewVertices when n < MinNodes.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildMap: %w".
func BuildMap(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodBuildMap, n, MinNodes, ErrTooFewVertices)
	}
	b, err := core.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMap, err)
	}

	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMap, i, ErrConstructFailed)
		}
		if err = fn(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMap, err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", MethodBuildMap, ErrConstructFailed, err)
	}

	return g, nil
}

// RandomMap builds the reference random map: n nodes at random positions
// and e random edges.
//
//	g, err := builder.RandomMap(builder.DefaultNodeCount, builder.DefaultEdgeCount, builder.WithSeed(7))
func RandomMap(n, e int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildMap(n, opts, RandomPositions(), RandomEdges(e))
}
