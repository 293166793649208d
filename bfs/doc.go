// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering and a MaxDepth limit.
//   - Components partitions a map into its connected components.
//
// Why
//
//   - Random maps are usually disconnected; BFS answers “can A* reach the
//     goal at all?” in O(V + E) and lets the CLI report component sizes.
//   - Fewest-hop paths complement the weighted A* and Dijkstra results.
//
// Determinism
//
//	Neighbors are visited in ascending ID order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node is outside [0, N).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit and context errors.
package bfs
