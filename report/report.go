package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/core"
)

// New builds a Report for res on g. Every consecutive pair of res.Path must
// be joined by an edge of g and the weights must add up to res.Cost;
// otherwise ErrBrokenPath is returned.
func New(g *core.Graph, res *astar.Result) (*Report, error) {
	if g == nil || res == nil {
		return nil, ErrNilInput
	}

	r := &Report{
		Start:    res.Start,
		Goal:     res.Goal,
		Status:   res.Status.String(),
		Nodes:    append([]int{}, res.Path...),
		Hops:     []Hop{},
		Segments: []Segment{},
		Expanded: res.Expanded,
		found:    res.Found(),
	}
	if !r.found {
		return r, nil
	}
	if len(res.Path) == 0 || res.Path[0] != res.Start || res.Path[len(res.Path)-1] != res.Goal {
		return nil, fmt.Errorf("%w: endpoints of %v are not %d→%d", ErrBrokenPath, res.Path, res.Start, res.Goal)
	}

	for i := 0; i+1 < len(res.Path); i++ {
		u, v := res.Path[i], res.Path[i+1]
		w, ok := g.Weight(u, v)
		if !ok {
			return nil, fmt.Errorf("%w: no edge %d—%d", ErrBrokenPath, u, v)
		}
		nu, _ := g.Node(u)
		nv, _ := g.Node(v)
		r.Hops = append(r.Hops, Hop{From: u, To: v, Weight: w})
		r.Segments = append(r.Segments, Segment{From: nu.Point(), To: nv.Point()})
		r.Cost += w
	}
	if r.Cost != res.Cost {
		return nil, fmt.Errorf("%w: hop weights sum to %d, result says %d", ErrBrokenPath, r.Cost, res.Cost)
	}

	return r, nil
}

// Chain returns "Node a -> Node b -> ..." for found routes and "" otherwise.
func (r *Report) Chain() string {
	if !r.found {
		return ""
	}
	parts := make([]string, len(r.Nodes))
	for i, id := range r.Nodes {
		parts[i] = fmt.Sprintf("Node %d", id)
	}

	return strings.Join(parts, " -> ")
}

// String renders the three-line console report:
//
//	Shortest Path from Node 0 to Node 2:
//	Node 0 -> Node 1 -> Node 2
//	Distance: 10
func (r *Report) String() string {
	if !r.found {
		return fmt.Sprintf("No path from Node %d to Node %d", r.Start, r.Goal)
	}

	return fmt.Sprintf("Shortest Path from Node %d to Node %d:\n%s\nDistance: %d",
		r.Start, r.Goal, r.Chain(), r.Cost)
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintln(w, r.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
