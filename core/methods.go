package core

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Len returns the number of nodes N.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// HasNode reports whether id lies in [0, N).
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.nodes) }

// Node returns the node with the given id.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of all nodes in ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Weight returns the weight of edge i—j. The boolean is false when i == j,
// when the nodes are not connected, or when either ID is out of range.
// Complexity: O(1).
func (g *Graph) Weight(i, j int) (int64, bool) {
	if !g.HasNode(i) || !g.HasNode(j) || i == j {
		return 0, false
	}
	w := g.weights[i*len(g.nodes)+j]

	return w, w != NoEdge
}

// Neighbors returns the IDs adjacent to id in ascending order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}
	out := make([]int, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// ForEachNeighbor calls fn for every neighbor of id in ascending order with
// the connecting weight, stopping early when fn returns false.
// Unlike Neighbors it does not allocate.
func (g *Graph) ForEachNeighbor(id int, fn func(v int, w int64) bool) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}
	row := g.weights[id*len(g.nodes):]
	for _, v := range g.adj[id] {
		if !fn(v, row[v]) {
			break
		}
	}

	return nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}

	return len(g.adj[id]), nil
}

// Edges returns every edge once with U < V, sorted by (U, V).
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	n := len(g.nodes)
	for u := 0; u < n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, Edge{U: u, V: v, Weight: g.weights[u*n+v]})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges E.
func (g *Graph) EdgeCount() int { return g.edges }

// MaxEdges returns N(N-1)/2, the edge count of the complete graph on N nodes.
func (g *Graph) MaxEdges() int { return MaxEdges(len(g.nodes)) }

// MaxEdges returns n(n-1)/2, the number of unordered pairs of distinct nodes.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Distance returns the Euclidean distance between nodes a and b.
// Complexity: O(1).
func (g *Graph) Distance(a, b int) (float64, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0, fmt.Errorf("%w: distance %d—%d", ErrNodeNotFound, a, b)
	}

	return planar.Distance(g.nodes[a].Point(), g.nodes[b].Point()), nil
}

// Bounds returns the smallest axis-aligned box containing every node.
func (g *Graph) Bounds() orb.Bound { return g.bounds }
