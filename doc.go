// Package astarmap generates random weighted planar maps and finds routes on
// them with A*.
//
// The module is organized into small packages:
//
//	core/     — immutable Graph of positioned nodes and weighted undirected edges
//	builder/  — random map generation (positions, then edges) with seeded RNG
//	astar/    — A* search with pluggable heuristics and expansion limits
//	dijkstra/ — exact single-source distances, used to audit A* results
//	bfs/      — hop-count traversal and connected components
//	mst/      — minimum spanning trees and forests (Kruskal, Prim)
//	locate/   — R-tree hit-testing of screen positions to node IDs
//	report/   — text, JSON and YAML route reports
//	metrics/  — Prometheus collectors for generation and search
//	config/   — YAML + environment configuration and zap logger setup
//
// The astarmap command in cmd/astarmap ties them together:
//
//	go run ./cmd/astarmap --seed 7 route --from 0 --to 42 --verify
//
// Quick ASCII example of a route on a four-node map:
//
//	0───1
//	│   │     0 → 1 → 3 costs 2+3; 0 → 2 → 3 costs 9+1.
//	2───3
package astarmap
