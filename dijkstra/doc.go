// Package dijkstra provides single-source shortest paths over a core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source node to every
//     reachable node in O((V + E) log V) time.
//   - Because map weights are positive integers, the result is exact; it is the
//     reference the A* search is checked against (astarmap route --verify).
//   - Supports optional path reconstruction, distance caps, and “impassable”
//     edge thresholds.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []int64, prev []int, err error)
//	func PathTo(dist []int64, prev []int, dest int) ([]int, error)
//
//	  - opts:
//	      • Source(int):                 required, the starting node ID.
//	      • WithReturnPath():            return the predecessor slice; otherwise prev == nil.
//	      • WithMaxDistance(int64):      explore only nodes with distance ≤ value.
//	      • WithInfEdgeThreshold(int64): skip any edge whose weight ≥ threshold.
//	  - dist: dist[v] = minimal distance from Source to v, or Unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest path, or -1.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source option missing.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source (or PathTo target) outside [0, N).
//   - ErrNoPath:          PathTo target not reached.
//   - ErrBadMaxDistance:  panic from WithMaxDistance on negative input.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on non-positive input.
//
// Thread safety:
//
//   - A *core.Graph is immutable, so concurrent Dijkstra calls are safe.
package dijkstra
