// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// impl_random_positions.go - implementation of the RandomPositions() constructor.
//
// Contract:
//   - Every node i (ascending) receives x then y drawn uniformly from
//     [Min.X, Max.X) × [Min.Y, Max.Y) of cfg.bounds.
//   - WithIntegerCoords floors both coordinates.
//   - Exactly two Float64 draws per node, so edge sampling that follows sees a
//     stable RNG state for a fixed seed and node count.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astarmap/core"
)

// RandomPositions returns a Constructor placing every node uniformly inside
// the configured bounds.
func RandomPositions() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		minX, minY := cfg.bounds.Min[0], cfg.bounds.Min[1]
		spanX := cfg.bounds.Max[0] - minX
		spanY := cfg.bounds.Max[1] - minY

		var x, y float64
		for i := 0; i < b.Len(); i++ {
			x = minX + cfg.rng.Float64()*spanX
			y = minY + cfg.rng.Float64()*spanY
			if cfg.integerCoords {
				x, y = math.Floor(x), math.Floor(y)
			}
			if err := b.SetPosition(i, x, y); err != nil {
				return fmt.Errorf("%s: %w: %v", MethodRandomPositions, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
