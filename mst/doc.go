// Package mst computes minimum spanning trees and forests of a planar map:
// the cheapest set of roads that keeps every reachable node reachable.
//
// Algorithms Provided
//
//   - Kruskal(g) sorts all edges by weight and merges components with a
//     disjoint-set (path compression, union by rank). Ties keep the
//     (U, V) order of Graph.Edges, so the result is deterministic.
//     Time O(E log E), memory O(V + E).
//
//   - Prim(g, root) grows one tree from root with a min-heap of candidate
//     edges. Time O(E log V), memory O(V + E).
//
//   - Forest(g) is Kruskal without the connectivity requirement: random
//     maps are often disconnected, and the forest holds one tree per
//     component.
//
// Kruskal and Prim return ErrDisconnected when no single tree spans the map.
// Compute dispatches on Options.Method.
package mst
