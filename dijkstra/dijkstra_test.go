// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, basic distances, predecessor output, MaxDistance,
// InfEdgeThreshold and agreement with A* on random maps.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/builder"
	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/dijkstra"
)

// triangle: 0—1 (1), 1—2 (2), 0—2 (5), plus isolated node 3.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{{ID: 0}, {ID: 1, X: 1}, {ID: 2, X: 2}, {ID: 3, X: 3}},
		[]core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 0, V: 2, Weight: 5}},
	)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	t.Parallel()
	g := triangle(t)

	tests := []struct {
		name    string
		g       *core.Graph
		opts    []dijkstra.Option
		wantErr error
	}{
		{"no source", g, nil, dijkstra.ErrNoSource},
		{"no source beats nil graph", nil, nil, dijkstra.ErrNoSource},
		{"nil graph", nil, []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrNilGraph},
		{"source out of range", g, []dijkstra.Option{dijkstra.Source(9)}, dijkstra.ErrVertexNotFound},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dist, prev, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.Nil(t, dist)
			assert.Nil(t, prev)
		})
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	t.Parallel()
	g := triangle(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, dijkstra.Unreachable}, dist)
	assert.Nil(t, prev)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1, -1}, prev)

	path, err := dijkstra.PathTo(dist, prev, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, err = dijkstra.PathTo(dist, prev, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = dijkstra.PathTo(dist, prev, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = dijkstra.PathTo(dist, prev, 7)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.PathTo(dist, nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	t.Parallel()
	g := triangle(t)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, dijkstra.Unreachable, dijkstra.Unreachable}, dist)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	t.Parallel()
	g := triangle(t)

	// 1—2 (weight 2) becomes a wall, leaving the direct edge.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.EqualValues(t, 5, dist[2])
}

// ------------------------------------------------------------------------
// 3. Cross-check with A*
// ------------------------------------------------------------------------

func TestDijkstra_BoundsAStarOnRandomMaps(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.RandomMap(80, 120, builder.WithSeed(seed))
		require.NoError(t, err)

		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
		require.NoError(t, err)

		for goal := 0; goal < g.Len(); goal++ {
			exact, err := astar.FindPath(g, 0, goal, astar.WithHeuristic(astar.Zero))
			require.NoError(t, err)
			fast, err := astar.FindPath(g, 0, goal)
			require.NoError(t, err)

			if dist[goal] == dijkstra.Unreachable {
				assert.False(t, exact.Found())
				assert.False(t, fast.Found())
				continue
			}
			assert.Equal(t, dist[goal], exact.Cost, "seed=%d goal=%d", seed, goal)
			// the Euclidean estimate may overshoot but never undercuts the optimum
			assert.GreaterOrEqual(t, fast.Cost, dist[goal])
		}
	}
}

func TestDijkstra_HeavyWeightsKeepExactDistances(t *testing.T) {
	t.Parallel()
	g, err := core.NewGraph(
		[]core.Node{{ID: 0}, {ID: 1, X: 1}, {ID: 2, X: 2}},
		[]core.Edge{{U: 0, V: 1, Weight: core.MaxWeight}, {U: 1, V: 2, Weight: core.MaxWeight}},
	)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, core.MaxWeight, 2 * core.MaxWeight}, dist)
	assert.NotEqual(t, dijkstra.Unreachable, dist[2])
}
