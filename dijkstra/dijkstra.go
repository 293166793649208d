// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Notes on implementation choices:
//
//   - Weights are validated positive by core, so no negative-weight pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/astarmap/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v, or Unreachable.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise);
//     prev[v] == u means the shortest path to v goes through u; -1 for the
//     source and unreached nodes.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions(noSource)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if cfg.Source == noSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source=%d, N=%d", ErrVertexNotFound, cfg.Source, g.Len())
	}

	// 3) Run.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the node sequence source..dest from a predecessor slice
// returned with WithReturnPath.
func PathTo(dist []int64, prev []int, dest int) ([]int, error) {
	if dest < 0 || dest >= len(dist) || len(prev) != len(dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, dest)
	}
	if dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}

	path := []int{}
	for at := dest; at != -1; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	dist    []int64 // best distance from Source
	prev    []int   // predecessor on the shortest path
	visited []bool  // finalized nodes
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its edges.
// It stops when the heap empties or the minimum distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	base := r.dist[u]
	err := r.g.ForEachNeighbor(u, func(v int, w int64) bool {
		if w >= r.options.InfEdgeThreshold {
			return true
		}
		newDist := base + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			return true
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	return nil
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element for container/heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
