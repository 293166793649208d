package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmap/core"
)

// square returns the four-node fixture (0,0),(10,0),(10,10),(0,10) with
// edges 0—1 (5), 1—2 (5), 0—2 (20); node 3 is isolated.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 10, Y: 10}, {ID: 3, X: 0, Y: 10}},
		[]core.Edge{{U: 0, V: 1, Weight: 5}, {U: 1, V: 2, Weight: 5}, {U: 2, V: 0, Weight: 20}},
	)
	require.NoError(t, err)

	return g
}

func TestNewBuilder_TooFewNodes(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		_, err := core.NewBuilder(n)
		assert.ErrorIs(t, err, core.ErrTooFewNodes, "n=%d", n)
	}
}

func TestNewBuilder_TooManyNodes(t *testing.T) {
	t.Parallel()
	_, err := core.NewBuilder(core.MaxNodes + 1)
	assert.ErrorIs(t, err, core.ErrTooManyNodes)
}

func TestBuilder_MaxWeightPathFits(t *testing.T) {
	t.Parallel()
	b, err := core.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, core.MaxWeight))
	require.NoError(t, b.AddEdge(1, 2, core.MaxWeight))

	// the longest possible path of maximal weights still fits in an int64
	assert.GreaterOrEqual(t, int64(math.MaxInt64)/core.MaxWeight, int64(core.MaxNodes-1))
}

func TestBuilder_AddEdgeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"unknown endpoint", 0, 7, 1, core.ErrNodeNotFound},
		{"negative endpoint", -1, 1, 1, core.ErrNodeNotFound},
		{"self loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"zero weight", 0, 1, 0, core.ErrBadWeight},
		{"negative weight", 0, 1, -3, core.ErrBadWeight},
		{"weight above max", 0, 2, core.MaxWeight + 1, core.ErrBadWeight},
		{"largest int64 weight", 1, 2, math.MaxInt64, core.ErrBadWeight},
		{"duplicate", 0, 1, 4, core.ErrMultiEdgeNotAllowed},
		{"duplicate reversed", 1, 0, 4, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := core.NewBuilder(3)
			require.NoError(t, err)
			require.NoError(t, b.AddEdge(0, 1, 2))

			err = b.AddEdge(tc.u, tc.v, tc.w)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			assert.Equal(t, 1, b.EdgeCount())
		})
	}
}

func TestBuilder_SetPosition(t *testing.T) {
	t.Parallel()
	b, err := core.NewBuilder(2)
	require.NoError(t, err)

	assert.ErrorIs(t, b.SetPosition(2, 1, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, b.SetPosition(0, math.NaN(), 1), core.ErrBadCoordinate)
	assert.ErrorIs(t, b.SetPosition(0, 1, math.Inf(-1)), core.ErrBadCoordinate)
	require.NoError(t, b.SetPosition(1, 3.5, -2))

	g, err := b.Build()
	require.NoError(t, err)
	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: 1, X: 3.5, Y: -2}, n)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	t.Parallel()
	b, err := core.NewBuilder(2)
	require.NoError(t, err)
	_, err = b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddEdge(0, 1, 1), core.ErrBuilderSealed)
	assert.ErrorIs(t, b.SetPosition(0, 1, 1), core.ErrBuilderSealed)
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
}

func TestNewGraph_IDMismatch(t *testing.T) {
	t.Parallel()
	_, err := core.NewGraph([]core.Node{{ID: 1}, {ID: 0}}, nil)
	assert.ErrorIs(t, err, core.ErrNodeIDMismatch)

	_, err = core.NewGraph(nil, nil)
	assert.ErrorIs(t, err, core.ErrTooFewNodes)
}

func TestGraph_MatrixInvariants(t *testing.T) {
	t.Parallel()
	g := square(t)

	require.Equal(t, 4, g.Len())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 6, g.MaxEdges())

	for i := 0; i < g.Len(); i++ {
		_, ok := g.Weight(i, i)
		assert.False(t, ok, "diagonal %d must be empty", i)
		for j := 0; j < g.Len(); j++ {
			wij, okij := g.Weight(i, j)
			wji, okji := g.Weight(j, i)
			assert.Equal(t, okij, okji)
			assert.Equal(t, wij, wji)
		}
	}

	w, ok := g.Weight(2, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 20, w)

	_, ok = g.Weight(0, 3)
	assert.False(t, ok)
	_, ok = g.Weight(0, 99)
	assert.False(t, ok)
}

func TestGraph_Queries(t *testing.T) {
	t.Parallel()
	g := square(t)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nbrs)

	nbrs[0] = 99 // caller owns the copy
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 2}, again)

	isolated, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Empty(t, isolated)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 0, V: 2, Weight: 20},
		{U: 1, V: 2, Weight: 5},
	}, g.Edges())

	var seen []int
	require.NoError(t, g.ForEachNeighbor(1, func(v int, w int64) bool {
		seen = append(seen, v)
		assert.EqualValues(t, 5, w)
		return true
	}))
	assert.Equal(t, []int{0, 2}, seen)

	d, err := g.Distance(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(200), d, 1e-9)

	_, err = g.Distance(0, -1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, g.Bounds())
}

func TestGraph_NodesIsCopy(t *testing.T) {
	t.Parallel()
	g := square(t)

	nodes := g.Nodes()
	for i, n := range nodes {
		assert.Equal(t, i, n.ID)
	}
	nodes[0].X = 1000

	n0, err := g.Node(0)
	require.NoError(t, err)
	assert.Zero(t, n0.X)
	assert.Equal(t, orb.Point{0, 0}, n0.Point())
}

func TestMaxEdges(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, core.MaxEdges(0))
	assert.Equal(t, 0, core.MaxEdges(1))
	assert.Equal(t, 1, core.MaxEdges(2))
	assert.Equal(t, 4950, core.MaxEdges(100))
}
