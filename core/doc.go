// Package core provides the immutable planar Graph used by every other
// astarmap package: a fixed set of nodes with 2D positions and a symmetric
// weighted adjacency matrix.
//
// The Graph G = (V,E) has these properties:
//
//   - Node IDs are 0..N-1 and double as storage indices (ID == position in Nodes()).
//   - Edges are undirected; W[i][j] == W[j][i] for every pair.
//   - The diagonal is zero; self-loops are rejected.
//   - At most one edge per unordered pair; parallel edges are rejected.
//   - Weights are strictly positive integers; 0 is reserved as the “no edge” sentinel.
//   - Positions are finite real coordinates, fixed once the graph is built.
//
// Lifecycle:
//
//	b, _ := core.NewBuilder(n)     // mutable, single-owner
//	b.SetPosition(id, x, y)        // place nodes
//	b.AddEdge(u, v, w)             // connect distinct, unconnected nodes
//	g, _ := b.Build()              // seal; b rejects further mutation
//
// A built *Graph exposes read-only queries only, so it may be shared by any
// number of goroutines without locking.
//
// Core Methods:
//
//	Len() int                                // O(1)
//	Node(id int) (Node, error)               // O(1)
//	Nodes() []Node                           // O(V) copy
//	Weight(i, j int) (int64, bool)           // O(1), false for i==j, no edge or bad index
//	Neighbors(id int) ([]int, error)         // O(deg) copy, ascending IDs
//	Edges() []Edge                           // O(E) copy, sorted by (U, V)
//	EdgeCount() int                          // O(1)
//	Distance(a, b int) (float64, error)      // O(1), Euclidean
//	Bounds() orb.Bound                       // O(1)
//
// Errors:
//
//	ErrTooFewNodes         – builder requested with n < 1
//	ErrTooManyNodes        – builder requested with n > MaxNodes
//	ErrNodeNotFound        – ID outside [0, N)
//	ErrNodeIDMismatch      – NewGraph node slice whose IDs are not 0..N-1 in order
//	ErrBadCoordinate       – NaN or ±Inf position
//	ErrBadWeight           – weight ≤ 0 or > MaxWeight
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – pair already connected
//	ErrBuilderSealed       – mutation after Build
package core
