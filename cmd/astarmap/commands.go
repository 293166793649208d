package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/bfs"
	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/dijkstra"
	"github.com/katalvlaran/astarmap/locate"
	"github.com/katalvlaran/astarmap/mst"
	"github.com/katalvlaran/astarmap/report"
)

var (
	errNoEndpoint = errors.New("exactly one of --from/--from-xy and one of --to/--to-xy is required")
	errNoNodeAt   = errors.New("no node within hit radius")
)

type routeCmd struct {
	From          int       `help:"Start node ID." default:"-1"`
	To            int       `help:"Goal node ID." default:"-1"`
	FromXY        []float64 `name:"from-xy" sep:"," help:"Start position X,Y; the node within the hit radius is used." placeholder:"X,Y"`
	ToXY          []float64 `name:"to-xy" sep:"," help:"Goal position X,Y; the node within the hit radius is used." placeholder:"X,Y"`
	Format        string    `help:"Output format." enum:"text,json,yaml" default:"text"`
	Verify        bool      `help:"Compare the route cost with the exact Dijkstra optimum."`
	MaxExpansions int       `name:"max-expansions" help:"Abort after this many node expansions (0 = unlimited, -1 keeps the configured value)." default:"-1"`
}

func (r *routeCmd) Run(e *env) error {
	g, err := e.generate()
	if err != nil {
		return err
	}

	start, err := r.endpoint(e, g, "start", r.From, r.FromXY)
	if err != nil {
		return err
	}
	goal, err := r.endpoint(e, g, "goal", r.To, r.ToXY)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := astar.FindPathContext(e.ctx, g, start, goal, e.cfg.SearchOptions()...)
	e.rec.ObserveSearch(res, err, time.Since(began))
	if err != nil {
		return err
	}
	e.log.Info("search finished",
		zap.Int("start", start),
		zap.Int("goal", goal),
		zap.Stringer("status", res.Status),
		zap.Int64("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
	)
	if !res.Found() {
		explainUnreachable(e, g, start, goal)
	}
	if r.Verify {
		if err := verify(e, g, res); err != nil {
			return err
		}
	}

	rep, err := report.New(g, res)
	if err != nil {
		return err
	}
	f, err := report.ParseFormat(r.Format)
	if err != nil {
		return err
	}

	return rep.Write(e.stdout, f)
}

// endpoint resolves a node either by ID or by position.
func (r *routeCmd) endpoint(e *env, g *core.Graph, role string, id int, xy []float64) (int, error) {
	switch {
	case id >= 0 && len(xy) == 0:
		return id, nil
	case id < 0 && len(xy) == 2:
		ix, err := locate.NewIndex(g)
		if err != nil {
			return -1, err
		}
		hit, ok := ix.NodeAt(xy[0], xy[1], e.cfg.HitRadius)
		if !ok {
			return -1, fmt.Errorf("%s (%g, %g): %w %g", role, xy[0], xy[1], errNoNodeAt, e.cfg.HitRadius)
		}
		e.log.Debug("node selected", zap.String("role", role), zap.Int("node", hit),
			zap.Float64("x", xy[0]), zap.Float64("y", xy[1]))
		if r.Format == "text" {
			label := "Start"
			if role == "goal" {
				label = "End"
			}
			fmt.Fprintf(e.stdout, "%s Node: %d\n", label, hit)
		}
		return hit, nil
	default:
		return -1, errNoEndpoint
	}
}

// explainUnreachable logs the component sizes of both endpoints.
func explainUnreachable(e *env, g *core.Graph, start, goal int) {
	from, err := bfs.BFS(g, start, bfs.WithContext(e.ctx))
	if err != nil {
		return
	}
	to, err := bfs.BFS(g, goal, bfs.WithContext(e.ctx))
	if err != nil {
		return
	}
	e.log.Info("endpoints lie in different components",
		zap.Int("start_component_size", len(from.Order)),
		zap.Int("goal_component_size", len(to.Order)),
	)
}

// verify checks res against Dijkstra. A costlier A* route is reported as a
// warning: the Euclidean estimate may exceed the remaining weight.
func verify(e *env, g *core.Graph, res *astar.Result) error {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(res.Start))
	if err != nil {
		return err
	}
	optimum := dist[res.Goal]
	reachable := optimum != dijkstra.Unreachable

	switch {
	case reachable != res.Found():
		return fmt.Errorf("verify: A* status %s disagrees with Dijkstra (reachable=%t)", res.Status, reachable)
	case !reachable:
		return nil
	case res.Cost > optimum:
		e.log.Warn("A* route is not optimal",
			zap.Int64("cost", res.Cost),
			zap.Int64("optimum", optimum),
		)
	default:
		e.log.Debug("A* route is optimal", zap.Int64("cost", res.Cost))
	}

	return nil
}

type mapCmd struct {
	Format string `help:"Output format." enum:"yaml,json" default:"yaml"`
}

// mapDoc is the serialized form of a generated map.
type mapDoc struct {
	Seed  *int64      `json:"seed,omitempty" yaml:"seed,omitempty"`
	Nodes []core.Node `json:"nodes" yaml:"nodes"`
	Edges []core.Edge `json:"edges" yaml:"edges"`
}

func (m *mapCmd) Run(e *env) error {
	g, err := e.generate()
	if err != nil {
		return err
	}
	doc := mapDoc{Seed: e.cfg.Seed, Nodes: g.Nodes(), Edges: g.Edges()}

	if m.Format == "json" {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(e.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

type componentsCmd struct{}

func (componentsCmd) Run(e *env) error {
	g, err := e.generate()
	if err != nil {
		return err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "%d components\n", len(comps))
	for _, c := range comps {
		fmt.Fprintf(e.stdout, "%d: %v\n", len(c), c)
	}

	return nil
}

type backboneCmd struct {
	Method string `help:"Spanning tree algorithm; prim needs a connected map." enum:"kruskal,prim" default:"kruskal"`
	Root   int    `help:"Prim start node."`
}

func (b *backboneCmd) Run(e *env) error {
	g, err := e.generate()
	if err != nil {
		return err
	}

	var t *mst.Tree
	if b.Method == mst.MethodPrim {
		t, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot(b.Root))
	} else {
		t, err = mst.Forest(g)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "Backbone: %d edges in %d trees, weight %d\n", len(t.Edges), t.Components, t.Weight)
	for _, edge := range t.Edges {
		fmt.Fprintf(e.stdout, "Node %d -- Node %d (%d)\n", edge.U, edge.V, edge.Weight)
	}

	return nil
}
