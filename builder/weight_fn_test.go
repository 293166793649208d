// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/astarmap/builder"
	"github.com/katalvlaran/astarmap/core"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_maxAboveCap", func() builder.WeightFn { return builder.UniformWeightFn(1, core.MaxWeight+1) }},
		{"ConstantWeightFn_aboveCap", func() builder.WeightFn { return builder.ConstantWeightFn(math.MaxInt64) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	// ConstantWeightFn: always the fixed value
	wfnConst := builder.ConstantWeightFn(7)
	assert.EqualValues(t, 7, wfnConst(nil))
	assert.EqualValues(t, 7, wfnConst(rng))

	// UniformWeightFn: nil RNG falls back to min
	wfnUni := builder.UniformWeightFn(3, 9)
	assert.EqualValues(t, 3, wfnUni(nil))

	// every draw lands in [min, max] and both ends are reachable
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		w := wfnUni(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(9))
		seen[w] = true
	}
	assert.True(t, seen[3], "min never drawn")
	assert.True(t, seen[9], "max never drawn")

	// degenerate interval
	assert.EqualValues(t, 4, builder.UniformWeightFn(4, 4)(rng))

	// the cap itself is accepted
	assert.EqualValues(t, core.MaxWeight, builder.ConstantWeightFn(core.MaxWeight)(rng))
	assert.LessOrEqual(t, builder.UniformWeightFn(core.MaxWeight-1, core.MaxWeight)(rng), core.MaxWeight)
}
