// SPDX-License-Identifier: MIT
// Package: astarmap/builder
//
// impl_random_edges.go - implementation of the RandomEdges(e) constructor.
//
// Canonical model:
//   - Rejection sampling: draw u, v uniformly from [0, n); reject u == v and
//     pairs that already share an edge; otherwise draw a weight and connect.
//   - Repeat until e new edges are placed.
//
// Contract:
//   - e ≥ 0 (else ErrNegativeEdgeCount).
//   - e ≤ free pairs = N(N-1)/2 - existing edges (else ErrGenerationExhausted,
//     reported before any draw).
//   - At most cfg.attemptBudget(e) draws; running out yields
//     ErrGenerationExhausted. The loop never spins forever, even when e is
//     close to N(N-1)/2 and nearly every draw is a collision.
//   - Weights come from cfg.weightFn and must be > 0 (else ErrConstructFailed).
//
// Complexity:
//   - Time: O(attempts); expected O(e) while the graph stays sparse.
//   - Space: O(1) extra.
//
// Determinism:
//   - Draw order per attempt: u, v, then weight (only for accepted pairs).

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/astarmap/core"
)

// RandomEdges returns a Constructor that adds e random simple edges.
func RandomEdges(e int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if e < 0 {
			return fmt.Errorf("%s: e=%d < 0: %w", MethodRandomEdges, e, ErrNegativeEdgeCount)
		}

		n := b.Len()
		free := core.MaxEdges(n) - b.EdgeCount()
		if e > free {
			return fmt.Errorf("%s: e=%d exceeds %d free node pairs for n=%d: %w",
				MethodRandomEdges, e, free, n, ErrGenerationExhausted)
		}

		budget := cfg.attemptBudget(e)
		var (
			placed, attempts, rejected int
			u, v                       int
			w                          int64
		)
		defer func() {
			if cfg.stats != nil {
				cfg.stats.Attempts += attempts
				cfg.stats.Rejected += rejected
				cfg.stats.Edges += placed
			}
		}()

		for placed < e {
			if attempts >= budget {
				cfg.logger.Warn("edge placement budget exhausted",
					zap.Int("nodes", n),
					zap.Int("requested", e),
					zap.Int("placed", placed),
					zap.Int("attempts", attempts),
				)
				return fmt.Errorf("%s: placed %d of %d edges after %d attempts: %w",
					MethodRandomEdges, placed, e, attempts, ErrGenerationExhausted)
			}
			attempts++

			u = cfg.rng.Intn(n)
			v = cfg.rng.Intn(n)
			if u == v || b.HasEdge(u, v) {
				rejected++
				continue
			}

			w = cfg.weightFn(cfg.rng)
			if err := b.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %w: %v",
					MethodRandomEdges, u, v, w, ErrConstructFailed, err)
			}
			placed++
		}

		cfg.logger.Debug("random edges placed",
			zap.Int("nodes", n),
			zap.Int("edges", placed),
			zap.Int("attempts", attempts),
			zap.Int("rejected", rejected),
		)

		return nil
	}
}
