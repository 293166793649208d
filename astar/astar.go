// Package astar implements A* search on planar graphs.
//
// Notes on implementation choices:
//
//   - g values are exact int64 sums of edge weights; only f mixes in the
//     float64 heuristic.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose node is already closed.
//   - Equal f values pop in push order, tracked by a monotonically increasing
//     sequence number.
//   - Neighbors are visited in ascending ID order, so the whole search is
//     deterministic for a given graph and (start, goal).
package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/astarmap/core"
)

// unreached marks a node without a finite cost from start.
const unreached = math.MaxInt64

// FindPath runs A* from start to goal on g with the given options.
// See FindPathContext.
func FindPath(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	return FindPathContext(context.Background(), g, start, goal, opts...)
}

// FindPathContext runs A* from start to goal on g. ctx is checked once per
// frontier pop.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must lie in [0, N) (ErrInvalidNodeID).
//  3. goal must lie in [0, N) (ErrInvalidNodeID).
//  4. Options must be valid (ErrOptionViolation).
//
// An unreachable goal is not an error: the Result has StatusUnreachable and
// an empty Path.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func FindPathContext(ctx context.Context, g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start=%d, N=%d", ErrInvalidNodeID, start, g.Len())
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal=%d, N=%d", ErrInvalidNodeID, goal, g.Len())
	}

	// 2) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	res := &Result{Start: start, Goal: goal}

	// 3) Trivial query: a one-node path of cost zero.
	if start == goal {
		res.Status = StatusFound
		res.Path = []int{start}
		return res, nil
	}

	// 4) Search.
	r := newRunner(g, cfg, start, goal)
	r.init()
	if err := r.process(ctx); err != nil {
		return nil, err
	}

	// 5) Reconstruct.
	res.Expanded = r.expanded
	if !r.found {
		res.Status = StatusUnreachable
		res.Path = []int{}
		return res, nil
	}
	res.Status = StatusFound
	res.Path = r.path()
	res.Cost = pathCost(g, res.Path)

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g           *core.Graph // read-only within the search
	opts        Options
	start, goal int

	cost   []int64 // best known cost from start (g)
	prev   []int   // predecessor on the best known path; -1 if none
	closed []bool  // finalized nodes
	pq     frontier
	seq    uint64 // push counter for stable tie-breaking

	expanded int
	found    bool
}

func newRunner(g *core.Graph, opts Options, start, goal int) *runner {
	n := g.Len()
	return &runner{
		g:      g,
		opts:   opts,
		start:  start,
		goal:   goal,
		cost:   make([]int64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(frontier, 0, n),
	}
}

// init sets every cost to +∞ and predecessor to -1, then pushes start.
func (r *runner) init() {
	for i := range r.cost {
		r.cost[i] = unreached
		r.prev[i] = -1
	}
	r.cost[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start)
}

// push enqueues id with its current f value.
func (r *runner) push(id int) {
	f := float64(r.cost[id]) + r.opts.Heuristic(r.g, id, r.goal)
	heap.Push(&r.pq, &entry{id: id, f: f, seq: r.seq})
	r.seq++
}

// process pops until the goal is closed or the frontier empties.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("astar: search %d→%d aborted after %d expansions: %w",
				r.start, r.goal, r.expanded, ctx.Err())
		default:
		}

		item := heap.Pop(&r.pq).(*entry)
		u := item.id

		// Stale entry left behind by a later relaxation.
		if r.closed[u] {
			continue
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions, %d→%d", ErrExpansionLimit, r.expanded, r.start, r.goal)
		}

		r.closed[u] = true
		r.expanded++
		r.opts.OnExpand(u, float64(r.cost[u]), item.f)

		if u == r.goal {
			r.found = true
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the cost of every open neighbor of u reachable through u.
// Assumes r.cost[u] is final.
func (r *runner) relax(u int) error {
	base := r.cost[u]
	err := r.g.ForEachNeighbor(u, func(v int, w int64) bool {
		if r.closed[v] {
			return true
		}
		candidate := base + w
		if candidate >= r.cost[v] {
			return true
		}
		r.cost[v] = candidate
		r.prev[v] = u
		r.opts.OnRelax(u, v, float64(candidate))
		r.push(v)

		return true
	})
	if err != nil {
		return fmt.Errorf("astar: failed to iterate neighbors of %d: %w", u, err)
	}

	return nil
}

// path walks predecessors from goal back to start and reverses them.
func (r *runner) path() []int {
	var out []int
	for at := r.goal; at != -1; at = r.prev[at] {
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// pathCost sums the edge weights along path.
func pathCost(g *core.Graph, path []int) int64 {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, _ := g.Weight(path[i], path[i+1])
		total += w
	}

	return total
}

// entry is one frontier element. Several entries may exist for the same node;
// only the first one popped is used.
type entry struct {
	id  int
	f   float64
	seq uint64
}

// frontier is a min-heap of *entry ordered by f, then by push sequence.
type frontier []*entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f values pop first-pushed-first.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be an *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element for container/heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
