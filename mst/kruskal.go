package mst

import (
	"sort"

	"github.com/katalvlaran/astarmap/core"
)

// Kruskal returns the minimum spanning tree of g, or ErrDisconnected.
func Kruskal(g *core.Graph) (*Tree, error) {
	t, err := Forest(g)
	if err != nil {
		return nil, err
	}
	if t.Components != 1 {
		return nil, ErrDisconnected
	}

	return t, nil
}

// Forest returns the minimum spanning forest of g: one tree per connected
// component, isolated nodes included in the component count.
func Forest(g *core.Graph) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Len()
	if n == 0 {
		return nil, ErrDisconnected
	}

	// Edges is sorted by (U, V); a stable sort keeps that order among equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(n)
	t := &Tree{Edges: make([]core.Edge, 0, n-1), Components: n}
	for _, e := range edges {
		if !ds.union(e.U, e.V) {
			continue
		}
		t.Edges = append(t.Edges, e)
		t.Weight += e.Weight
		t.Components--
		if t.Components == 1 {
			break
		}
	}

	return t, nil
}

// disjointSet is union-find over [0, n) with path halving and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
