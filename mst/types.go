package mst

import (
	"errors"

	"github.com/katalvlaran/astarmap/core"
)

// Sentinel errors for spanning tree computation.
var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrInvalidRoot indicates the Prim root is outside [0, N).
	ErrInvalidRoot = errors.New("mst: root node not found")

	// ErrDisconnected indicates no single tree spans every node.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Options.Method names no algorithm.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method names accepted by Compute.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// Tree is a spanning tree or forest.
type Tree struct {
	// Edges in the order they were added; each has U < V.
	Edges []core.Edge
	// Weight is the sum of edge weights.
	Weight int64
	// Components is the number of trees; 1 for a spanning tree.
	Components int
}

// Options selects the algorithm and, for Prim, the root node.
type Options struct {
	Method string
	Root   int
}

// Option configures Options.
type Option func(*Options)

// WithMethod selects MethodKruskal or MethodPrim.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the Prim start node; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Kruskal with root 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the algorithm chosen by opts.
func Compute(g *core.Graph, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, ErrUnknownMethod
	}
}
