// Package locate resolves screen or map positions to graph nodes.
//
// An Index stores every node of a core.Graph in an R-tree so that the
// "which node did the user click?" question costs O(log N) instead of a scan.
// The first node in ascending ID order whose centre lies strictly inside the
// hit radius wins.
package locate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/astarmap/core"
)

// DefaultHitRadius is the click radius, in map units, around a node centre.
const DefaultHitRadius = 20.0

// pointTol is the half-width of the box stored for each node.
const pointTol = 0.5

// ErrNilGraph indicates NewIndex was given a nil graph.
var ErrNilGraph = errors.New("locate: graph is nil")

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	id  int
	pt  orb.Point
	box rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.box }

// Index answers proximity queries over the nodes of one graph.
// It is read-only after NewIndex and safe for concurrent queries.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex builds an Index over every node of g.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	tree := rtreego.NewTree(2, 25, 50)
	for _, nd := range g.Nodes() {
		box, err := rtreego.NewRect(
			rtreego.Point{nd.X - pointTol, nd.Y - pointTol},
			[]float64{2 * pointTol, 2 * pointTol},
		)
		if err != nil {
			return nil, fmt.Errorf("locate: node %d: %w", nd.ID, err)
		}
		tree.Insert(&nodeEntry{id: nd.ID, pt: nd.Point(), box: box})
	}

	return &Index{tree: tree, n: g.Len()}, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.n }

// Within returns the IDs of all nodes strictly closer than radius to (x, y),
// in ascending order. A non-positive or non-finite radius matches nothing.
func (ix *Index) Within(x, y, radius float64) []int {
	if !(radius > 0) || math.IsInf(radius, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return []int{}
	}

	query, err := rtreego.NewRect(
		rtreego.Point{x - radius, y - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return []int{}
	}

	at := orb.Point{x, y}
	out := []int{}
	for _, item := range ix.tree.SearchIntersect(query) {
		e := item.(*nodeEntry)
		if planar.Distance(at, e.pt) < radius {
			out = append(out, e.id)
		}
	}
	sort.Ints(out)

	return out
}

// NodeAt returns the smallest node ID strictly within radius of (x, y).
func (ix *Index) NodeAt(x, y, radius float64) (int, bool) {
	hits := ix.Within(x, y, radius)
	if len(hits) == 0 {
		return -1, false
	}

	return hits[0], true
}
