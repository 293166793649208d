// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels never embed parameters.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates a node count below MinNodes.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNegativeEdgeCount indicates RandomEdges was asked for fewer than zero edges.
var ErrNegativeEdgeCount = errors.New("builder: edge count must not be negative")

// ErrGenerationExhausted indicates that the requested edge count cannot be
// placed: either it exceeds N(N-1)/2 or the rejection-sampling budget ran out
// first. Callers treat it as a configuration error.
var ErrGenerationExhausted = errors.New("builder: generation exhausted")

// ErrConstructFailed indicates that a constructor could not mutate the
// graph builder (nil constructor, invalid generated weight, sealed builder).
var ErrConstructFailed = errors.New("builder: construction failed")
