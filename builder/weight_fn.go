// Package builder provides helper functions and types
// for configuring edge-weight distributions in map constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/astarmap/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and return values > 0.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics unless 1 ≤ value ≤ core.MaxWeight.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: require 1 ≤ value ≤ %d, got %d", core.MaxWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics unless 1 ≤ min ≤ max ≤ core.MaxWeight.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min || max > core.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max ≤ %d, got min=%d, max=%d", core.MaxWeight, min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
