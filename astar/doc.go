// Package astar implements A* point-to-point shortest-path search over a
// planar core.Graph.
//
// Overview:
//
//   - FindPath computes a minimum-cost path from start to goal, expanding nodes
//     in ascending order of f = g + h, where g is the best known cost from start
//     and h is a heuristic estimate of the remaining cost.
//   - The default heuristic is the Euclidean distance between node positions.
//   - The search stops as soon as the goal is popped from the frontier.
//
// Heuristic caveat:
//
//   - Edge weights are arbitrary positive integers, not derived from geometry, so
//     the Euclidean heuristic can overestimate the remaining cost. The result is
//     then still a valid start→goal path with an exact cost, but not necessarily
//     the cheapest one. Optimality is guaranteed only when every weight is at
//     least the straight-line distance between its endpoints. Use WithHeuristic(Zero)
//     to trade speed for guaranteed optimality (the search degenerates to Dijkstra).
//
// Frontier:
//
//   - A binary min-heap keyed by f; equal f values pop in push order
//     (first-discovered-first-served).
//   - Lazy deletion: a relaxed node is pushed again; stale entries are skipped on
//     pop because the node is already closed. No decrease-key is needed.
//
// Outcomes:
//
//   - StatusFound:       Path holds start..goal inclusive; Cost = Σ edge weights.
//     start == goal yields Path == [start], Cost == 0.
//   - StatusUnreachable: frontier exhausted; Path is empty. Not an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrInvalidNodeID:   start or goal outside [0, N).
//   - ErrOptionViolation: negative expansion limit, nil heuristic, …
//   - ErrExpansionLimit:  WithMaxExpansions budget spent before termination.
//   - context errors:     FindPathContext's ctx cancelled or expired (wrapped).
//
// Complexity:
//
//   - Time:  O((V + E) log E) in the worst case.
//   - Space: O(V + E) for per-call state and the heap under lazy deletion.
//
// Thread safety:
//
//   - Each call allocates its own state; the graph is only read. Concurrent
//     calls on one *core.Graph are safe.
package astar
