package bfs_test

import (
	"testing"

	"github.com/katalvlaran/astarmap/bfs"
	"github.com/katalvlaran/astarmap/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges := make([][3]int, 0, N-1)
	for i := 0; i+1 < N; i++ {
		edges = append(edges, [3]int{i, i + 1})
	}
	g := build(b, N, edges...)

	b.ReportAllocs()
	b.SetBytes(int64(N + N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomMap measures BFS on a default-sized random map.
func BenchmarkBFS_RandomMap(b *testing.B) {
	g, err := builder.RandomMap(builder.DefaultNodeCount, builder.DefaultEdgeCount, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents partitions a sparse 2000-node map.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.RandomMap(2000, 3000, builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
