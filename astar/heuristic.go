package astar

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/astarmap/core"
)

// Heuristic estimates the remaining cost from node a to node b of g.
// Both IDs are valid when called.
type Heuristic func(g *core.Graph, a, b int) float64

// Euclidean is the straight-line distance between the node positions.
func Euclidean(g *core.Graph, a, b int) float64 {
	na, _ := g.Node(a)
	nb, _ := g.Node(b)

	return planar.Distance(na.Point(), nb.Point())
}

// Zero always returns 0; A* with Zero expands like Dijkstra and is optimal
// for any positive weights.
func Zero(*core.Graph, int, int) float64 { return 0 }

// Scaled returns h multiplied by k (k ≥ 0). With k < 1 an Euclidean estimate
// can be made admissible for maps whose weight per unit length is known to be
// at least k.
func Scaled(h Heuristic, k float64) Heuristic {
	if h == nil || k < 0 {
		panic("astar: Scaled requires non-nil heuristic and k ≥ 0")
	}

	return func(g *core.Graph, a, b int) float64 { return k * h(g, a, b) }
}
