package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// NewBuilder returns a Builder for a graph of n nodes placed at the origin
// with no edges.
// Complexity: O(n²) time and memory for the weight matrix.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooManyNodes, n, MaxNodes)
	}
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i].ID = i
	}

	return &Builder{
		nodes:   nodes,
		weights: make([]int64, n*n),
	}, nil
}

// NewGraph builds a Graph from explicit nodes and edges.
// nodes[i].ID must equal i. Edge endpoints may be given in either order.
// Complexity: O(V² + E).
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	b, err := NewBuilder(len(nodes))
	if err != nil {
		return nil, err
	}
	for i, n := range nodes {
		if n.ID != i {
			return nil, fmt.Errorf("%w: nodes[%d].ID=%d", ErrNodeIDMismatch, i, n.ID)
		}
		if err = b.SetPosition(i, n.X, n.Y); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err = b.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Len returns the number of nodes.
func (b *Builder) Len() int { return len(b.nodes) }

// EdgeCount returns the number of edges added so far.
func (b *Builder) EdgeCount() int { return b.edges }

// SetPosition places node id at (x, y).
func (b *Builder) SetPosition(id int, x, y float64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if !b.valid(id) {
		return fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}
	if !finite(x) || !finite(y) {
		return fmt.Errorf("%w: node %d at (%g, %g)", ErrBadCoordinate, id, x, y)
	}
	b.nodes[id].X, b.nodes[id].Y = x, y

	return nil
}

// HasEdge reports whether u and v are already connected.
// Out-of-range IDs report false.
func (b *Builder) HasEdge(u, v int) bool {
	if !b.valid(u) || !b.valid(v) {
		return false
	}

	return b.weights[u*len(b.nodes)+v] != NoEdge
}

// AddEdge connects u and v with weight w in both directions.
//
// Validation order: sealed, unknown endpoint, self-loop, weight, duplicate.
// Complexity: O(1).
func (b *Builder) AddEdge(u, v int, w int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if !b.valid(u) || !b.valid(v) {
		return fmt.Errorf("%w: edge %d—%d", ErrNodeNotFound, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}
	if w <= 0 || w > MaxWeight {
		return fmt.Errorf("%w: edge %d—%d weight=%d", ErrBadWeight, u, v, w)
	}
	n := len(b.nodes)
	if b.weights[u*n+v] != NoEdge {
		return fmt.Errorf("%w: edge %d—%d", ErrMultiEdgeNotAllowed, u, v)
	}
	b.weights[u*n+v] = w
	b.weights[v*n+u] = w
	b.edges++

	return nil
}

// Build seals the Builder and returns the Graph.
// The neighbor cache and bounding box are computed once here.
// Complexity: O(V²).
func (b *Builder) Build() (*Graph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	n := len(b.nodes)
	adj := make([][]int, n)
	bound := orb.Bound{Min: b.nodes[0].Point(), Max: b.nodes[0].Point()}
	for i := 0; i < n; i++ {
		row := b.weights[i*n : (i+1)*n]
		for j, w := range row {
			if w != NoEdge {
				adj[i] = append(adj[i], j)
			}
		}
		bound = bound.Extend(b.nodes[i].Point())
	}

	g := &Graph{
		nodes:   b.nodes,
		weights: b.weights,
		adj:     adj,
		edges:   b.edges,
		bounds:  bound,
	}
	b.nodes, b.weights = nil, nil

	return g, nil
}

func (b *Builder) valid(id int) bool { return id >= 0 && id < len(b.nodes) }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
