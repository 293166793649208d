// Package builder generates random planar maps: a core.Graph whose nodes are
// scattered uniformly inside a bounding box and whose edges connect random
// distinct, not-yet-connected node pairs with random positive integer weights.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMap(n, bopts, cons...): allocate n nodes, resolve options, run constructors, seal.
//     – RandomMap(n, e, opts...):    BuildMap with RandomPositions() and RandomEdges(e).
//   - Constructors (Constructor closures):
//     – RandomPositions():           uniform positions in the configured bound.
//     – RandomEdges(e):              rejection-sampled simple edges, bounded attempts.
//   - Configuration primitives:
//     – BuilderOption:               a function that mutates builderConfig before use.
//     – WithSeed / WithRand:         deterministic randomness.
//     – WithBounds:                  placement rectangle (default [50,800) × [50,600)).
//     – WithWeightRange / WithWeightFn: edge weights (default uniform integers in [1,20]).
//     – WithMaxAttempts:             rejection-sampling budget.
//     – WithIntegerCoords:           floor positions to whole pixels.
//     – WithLogger / WithStats:      observability.
//
// Guarantees:
//
//   - The generated weight matrix is symmetric with a zero diagonal and holds exactly
//     the requested number of distinct unordered pairs, every weight within range.
//   - No connectivity guarantee: the map may be disconnected.
//   - Rejection sampling never loops forever: a request larger than N(N-1)/2 fails
//     immediately and any request fails once the attempt budget is spent, both with
//     ErrGenerationExhausted.
//   - Same seed, options and constructor order ⇒ identical map.
//   - Without WithSeed/WithRand each BuildMap call seeds a fresh source from the
//     wall clock.
//
// Option constructors panic on meaningless arguments; constructors return
// sentinel errors and never panic.
package builder
