// Package core declares Node, Edge, Graph and Builder together with the
// sentinel errors shared by construction and queries.
package core

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewNodes indicates a Builder was requested for fewer than one node.
	ErrTooFewNodes = errors.New("core: node count must be at least 1")

	// ErrNodeNotFound indicates an operation referenced an ID outside [0, N).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeIDMismatch indicates a node whose ID differs from its storage index.
	ErrNodeIDMismatch = errors.New("core: node ID does not match its index")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("core: coordinate must be finite")

	// ErrTooManyNodes indicates a Builder was requested for more than MaxNodes nodes.
	ErrTooManyNodes = errors.New("core: node count exceeds MaxNodes")

	// ErrBadWeight indicates a weight outside [1, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight must be in [1, MaxWeight]")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an edge between already connected nodes.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBuilderSealed indicates a Builder was used after Build.
	ErrBuilderSealed = errors.New("core: builder already sealed")
)

// NoEdge is the weight-matrix value meaning “no edge between these nodes”.
const NoEdge int64 = 0

// MaxNodes caps the node count; the dense weight matrix holds MaxNodes² entries.
const MaxNodes = 1 << 14

// MaxWeight is the largest accepted edge weight. A simple path has at most
// MaxNodes-1 edges, so any path cost fits in an int64.
const MaxWeight int64 = math.MaxInt64 / MaxNodes

// Node is a point of the planar graph.
//
// ID is both the identity and the storage index of the node.
type Node struct {
	ID int     `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Point returns the node position as an orb.Point.
func (n Node) Point() orb.Point { return orb.Point{n.X, n.Y} }

// Edge is an undirected weighted connection between two distinct nodes.
// Edges returned by Graph always satisfy U < V.
type Edge struct {
	U      int   `json:"u" yaml:"u"`
	V      int   `json:"v" yaml:"v"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Graph is an immutable planar graph backed by a dense symmetric weight matrix.
//
// weights holds N*N entries in row-major order; weights[i*N+j] == NoEdge means
// no edge. adj caches the ascending neighbor IDs of every node.
type Graph struct {
	nodes   []Node
	weights []int64
	adj     [][]int
	edges   int
	bounds  orb.Bound
}

// Builder accumulates nodes and edges for a single Graph.
// It is not safe for concurrent use; Build hands ownership of the
// storage to the returned Graph and seals the Builder.
type Builder struct {
	nodes   []Node
	weights []int64
	edges   int
	sealed  bool
}
