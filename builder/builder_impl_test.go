// Package builder_test contains functional tests for the map constructors,
// verifying counts, matrix invariants, ranges, determinism and the bounded
// rejection-sampling failure mode.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmap/builder"
	"github.com/katalvlaran/astarmap/core"
)

// requireMapInvariants checks symmetry, zero diagonal, exact edge count and
// weight range on every pair of g.
func requireMapInvariants(t *testing.T, g *core.Graph, wantE int, minW, maxW int64) {
	t.Helper()

	pairs := 0
	for i := 0; i < g.Len(); i++ {
		_, ok := g.Weight(i, i)
		require.False(t, ok, "diagonal %d", i)
		for j := i + 1; j < g.Len(); j++ {
			wij, okij := g.Weight(i, j)
			wji, okji := g.Weight(j, i)
			require.Equal(t, okij, okji, "symmetry %d—%d", i, j)
			require.Equal(t, wij, wji, "symmetry %d—%d", i, j)
			if okij {
				pairs++
				require.GreaterOrEqual(t, wij, minW)
				require.LessOrEqual(t, wij, maxW)
			}
		}
	}
	require.Equal(t, wantE, pairs)
	require.Equal(t, wantE, g.EdgeCount())
}

func TestRandomMap_DefaultReference(t *testing.T) {
	t.Parallel()

	g, err := builder.RandomMap(builder.DefaultNodeCount, builder.DefaultEdgeCount, builder.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, builder.DefaultNodeCount, g.Len())
	requireMapInvariants(t, g, builder.DefaultEdgeCount, builder.DefaultMinWeight, builder.DefaultMaxWeight)

	def := builder.DefaultBounds()
	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, n.X, def.Min[0])
		assert.Less(t, n.X, def.Max[0])
		assert.GreaterOrEqual(t, n.Y, def.Min[1])
		assert.Less(t, n.Y, def.Max[1])
	}
}

func TestRandomMap_ManySeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n, e       int
		minW, maxW int64
	}{
		{"tiny", 2, 1, 1, 1},
		{"sparse", 30, 20, 1, 20},
		{"dense", 12, 60, 3, 8},
		{"complete", 8, 28, 1, 100},
		{"no edges", 5, 0, 1, 20},
		{"single node", 1, 0, 1, 20},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for seed := int64(0); seed < 10; seed++ {
				g, err := builder.RandomMap(tc.n, tc.e,
					builder.WithSeed(seed),
					builder.WithWeightRange(tc.minW, tc.maxW),
				)
				require.NoError(t, err, "seed=%d", seed)
				require.Equal(t, tc.n, g.Len())
				requireMapInvariants(t, g, tc.e, tc.minW, tc.maxW)
			}
		})
	}
}

func TestRandomMap_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomMap(50, 80, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.RandomMap(50, 80, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())

	c, err := builder.RandomMap(50, 80, builder.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges())
}

func TestRandomMap_SharedRandAdvances(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	a, err := builder.RandomMap(20, 10, builder.WithRand(rng))
	require.NoError(t, err)
	b, err := builder.RandomMap(20, 10, builder.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, a.Nodes(), b.Nodes())
}

func TestRandomMap_IntegerCoordsAndBounds(t *testing.T) {
	t.Parallel()

	bound := orb.Bound{Min: orb.Point{-5, 10}, Max: orb.Point{5, 12}}
	g, err := builder.RandomMap(40, 10,
		builder.WithSeed(3),
		builder.WithBounds(bound),
		builder.WithIntegerCoords(),
	)
	require.NoError(t, err)
	for _, n := range g.Nodes() {
		assert.Equal(t, float64(int(n.X)), n.X)
		assert.Equal(t, float64(int(n.Y)), n.Y)
		assert.True(t, n.X >= -5 && n.X < 5, "x=%g", n.X)
		assert.True(t, n.Y >= 10 && n.Y < 12, "y=%g", n.Y)
	}
}

func TestRandomEdges_TooManyEdges(t *testing.T) {
	t.Parallel()

	// 5 nodes have only 10 distinct pairs.
	_, err := builder.RandomMap(5, 11, builder.WithSeed(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrGenerationExhausted), "got %v", err)
}

func TestRandomEdges_BudgetExhausted(t *testing.T) {
	t.Parallel()

	stats := &builder.Stats{}
	// Complete graph on 30 nodes needs far more than 50 draws.
	_, err := builder.RandomMap(30, core.MaxEdges(30),
		builder.WithSeed(1),
		builder.WithMaxAttempts(50),
		builder.WithStats(stats),
	)
	require.ErrorIs(t, err, builder.ErrGenerationExhausted)
	assert.Equal(t, 50, stats.Attempts)
	assert.Equal(t, stats.Attempts, stats.Edges+stats.Rejected)
	assert.Less(t, stats.Edges, core.MaxEdges(30))
}

func TestRandomEdges_Stats(t *testing.T) {
	t.Parallel()

	stats := &builder.Stats{}
	_, err := builder.RandomMap(10, 45, builder.WithSeed(8), builder.WithStats(stats))
	require.NoError(t, err)
	assert.Equal(t, 45, stats.Edges)
	assert.Equal(t, stats.Attempts, stats.Edges+stats.Rejected)
	assert.Greater(t, stats.Rejected, 0, "completing K10 must hit collisions")
}

func TestBuildMap_Validation(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildMap(0, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildMap(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildMap(3, nil, builder.RandomEdges(-1))
	assert.ErrorIs(t, err, builder.ErrNegativeEdgeCount)
	assert.NotErrorIs(t, err, builder.ErrTooFewVertices)

	bad := builder.WeightFn(func(*rand.Rand) int64 { return 0 })
	_, err = builder.BuildMap(3, []builder.BuilderOption{builder.WithWeightFn(bad), builder.WithSeed(1)},
		builder.RandomEdges(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildMap_ComposedConstructors(t *testing.T) {
	t.Parallel()

	// Two RandomEdges passes accumulate; the second sees fewer free pairs.
	g, err := builder.BuildMap(6, []builder.BuilderOption{builder.WithSeed(4)},
		builder.RandomPositions(), builder.RandomEdges(10), builder.RandomEdges(5))
	require.NoError(t, err)
	requireMapInvariants(t, g, 15, builder.DefaultMinWeight, builder.DefaultMaxWeight)

	_, err = builder.BuildMap(6, []builder.BuilderOption{builder.WithSeed(4)},
		builder.RandomEdges(10), builder.RandomEdges(6))
	assert.ErrorIs(t, err, builder.ErrGenerationExhausted)
}

func TestBuildMap_UnseededVaries(t *testing.T) {
	t.Parallel()

	// Without a seed every call draws a fresh wall-clock seed.
	a, err := builder.RandomMap(10, 5)
	require.NoError(t, err)
	requireMapInvariants(t, a, 5, builder.DefaultMinWeight, builder.DefaultMaxWeight)

	// equal clock readings give equal seeds, so allow the clock to move
	varied := false
	for i := 0; i < 50 && !varied; i++ {
		time.Sleep(time.Millisecond)
		b, err := builder.RandomMap(10, 5)
		require.NoError(t, err)
		varied = !assert.ObjectsAreEqual(a.Nodes(), b.Nodes())
	}
	assert.True(t, varied, "unseeded maps never differed")
}
