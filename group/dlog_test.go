package group

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDLogSmallValues(t *testing.T) {
	ctx := Test(NoAcceleration)
	for x := 0; x < 50; x++ {
		gx, err := ctx.GPowPSmall(x)
		require.NoError(t, err)
		got, ok := ctx.DLog(gx)
		require.True(t, ok)
		assert.Equal(t, x, got)
	}
}

func TestDLogIsMemoizedAndMonotonic(t *testing.T) {
	ctx := Test(NoAcceleration)
	g41, err := ctx.GPowPSmall(41)
	require.NoError(t, err)

	x, ok := ctx.DLog(g41)
	require.True(t, ok)
	assert.Equal(t, 41, x)
	assert.GreaterOrEqual(t, ctx.dlog.maxExponent, 41)

	// Re-solving a smaller exponent must hit the already-populated table
	// rather than re-derive it, and must return the same answer.
	g10, err := ctx.GPowPSmall(10)
	require.NoError(t, err)
	x2, ok := ctx.DLog(g10)
	require.True(t, ok)
	assert.Equal(t, 10, x2)
}

func TestDLogConcurrentSolveIsSafe(t *testing.T) {
	ctx := Test(NoAcceleration)
	targets := make([]ElementModP, 20)
	for i := range targets {
		gx, err := ctx.GPowPSmall(i)
		require.NoError(t, err)
		targets[i] = gx
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, target := range targets {
				ctx.DLog(target)
			}
		}()
	}
	wg.Wait()

	for i, target := range targets {
		x, ok := ctx.DLog(target)
		require.True(t, ok)
		assert.Equal(t, i, x)
	}
}

// TestDLogSolvesLargeExponent exercises the million-exponent scenario
// directly; it is slow (a million modular multiplications to extend the
// cache) so it is skipped under -short.
func TestDLogSolvesLargeExponent(t *testing.T) {
	if testing.Short() {
		t.Skip("extends the DLog cache by a million entries")
	}
	ctx := Production(NoAcceleration)
	target, err := ctx.GPowPSmall(1_000_000)
	require.NoError(t, err)
	x, ok := ctx.DLog(target)
	require.True(t, ok)
	assert.Equal(t, 1_000_000, x)
}

// TestDLogCapIsRespected whitebox-constructs a dLogCache whose table is
// already almost at dLogMax, so the cap can be exercised without actually
// performing a billion group multiplications.
func TestDLogCapIsRespected(t *testing.T) {
	ctx := Test(NoAcceleration)

	near := dLogMax - 1
	maxElement := new(big.Int).Exp(ctx.g, big.NewInt(int64(near)), ctx.p)

	cache := &dLogCache{
		ctx:         ctx,
		table:       map[string]int{"1": 0, maxElement.String(): near},
		maxExponent: near,
		maxElement:  new(big.Int).Set(maxElement),
	}

	// The next element is still reachable (one more multiplication away).
	oneMore := new(big.Int).Mul(maxElement, ctx.g)
	oneMore.Mod(oneMore, ctx.p)
	x, ok := cache.solve(oneMore)
	require.True(t, ok)
	assert.Equal(t, dLogMax, x)

	// Anything past the cap is not reachable.
	twoMore := new(big.Int).Mul(oneMore, ctx.g)
	twoMore.Mod(twoMore, ctx.p)
	_, ok = cache.solve(twoMore)
	assert.False(t, ok)
}
