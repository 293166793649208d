package mst

import (
	"container/heap"

	"github.com/katalvlaran/astarmap/core"
)

// Prim grows the minimum spanning tree of g from root. It returns
// ErrDisconnected when some node cannot be reached from root.
func Prim(g *core.Graph, root int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(root) {
		return nil, ErrInvalidRoot
	}

	n := g.Len()
	visited := make([]bool, n)
	t := &Tree{Edges: make([]core.Edge, 0, n-1), Components: 1}
	pq := &edgePQ{}

	// push queues every edge from u to a node outside the tree.
	push := func(u int) {
		visited[u] = true
		_ = g.ForEachNeighbor(u, func(v int, w int64) bool {
			if !visited[v] {
				heap.Push(pq, candidate{from: u, to: v, weight: w, seq: pq.seq})
				pq.seq++
			}
			return true
		})
	}

	push(root)
	for pq.Len() > 0 && len(t.Edges) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		u, v := c.from, c.to
		if u > v {
			u, v = v, u
		}
		t.Edges = append(t.Edges, core.Edge{U: u, V: v, Weight: c.weight})
		t.Weight += c.weight
		push(c.to)
	}

	if len(t.Edges) < n-1 {
		return nil, ErrDisconnected
	}

	return t, nil
}

// candidate is an edge leaving the tree; seq breaks weight ties in push order.
type candidate struct {
	from, to int
	weight   int64
	seq      int
}

// edgePQ is a min-heap of candidates ordered by weight, then seq.
type edgePQ struct {
	items []candidate
	seq   int
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	c := old[n-1]
	pq.items = old[:n-1]

	return c
}
