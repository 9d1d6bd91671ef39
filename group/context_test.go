package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takakv/electionguard-core/internal/errs"
)

func TestTestAndProductionAreSingletonsPerTier(t *testing.T) {
	a := Test(LowMemoryUse)
	b := Test(LowMemoryUse)
	assert.Same(t, a, b)

	c := Test(HighMemoryUse)
	assert.NotSame(t, a, c)

	p1 := Production(NoAcceleration)
	p2 := Production(NoAcceleration)
	assert.Same(t, p1, p2)
}

func TestTestParametersMatchSpec(t *testing.T) {
	ctx := Test(NoAcceleration)
	assert.Equal(t, "65267", ctx.P().String())
	assert.Equal(t, "32633", ctx.Q().String())
	assert.Equal(t, "3", ctx.g.String())
	assert.Equal(t, "2", ctx.R().String())
	assert.False(t, ctx.IsProductionStrength())
}

func TestProductionParametersAreConsistent(t *testing.T) {
	ctx := Production(NoAcceleration)
	assert.True(t, ctx.IsProductionStrength())

	// P - 1 == R * Q
	pMinus1 := new(big.Int).Sub(ctx.p, big1)
	rq := new(big.Int).Mul(ctx.r, ctx.q)
	assert.Equal(t, 0, pMinus1.Cmp(rq))

	// G has order exactly Q: G^Q == 1 mod P, G != 1.
	gPowQ := ctx.GModP()
	check, err := gPowQ.PowP(ElementModQ{ctx: ctx, v: ctx.q})
	require.NoError(t, err)
	assert.True(t, check.Equal(ctx.OneModP()))
	assert.False(t, ctx.GModP().Equal(ctx.OneModP()))
}

func TestAssertCompatibleAcrossStrength(t *testing.T) {
	testC := Test(NoAcceleration)
	prodC := Production(NoAcceleration)

	err := testC.AssertCompatible(prodC)
	require.Error(t, err)
	var incompatible *errs.IncompatibleContextError
	assert.ErrorAs(t, err, &incompatible)

	assert.NoError(t, testC.AssertCompatible(Test(HighMemoryUse)))
}

func TestGPowPSmallUsesCachedConstants(t *testing.T) {
	ctx := Test(NoAcceleration)

	zero, err := ctx.GPowPSmall(0)
	require.NoError(t, err)
	assert.True(t, zero.Equal(ctx.OneModP()))

	one, err := ctx.GPowPSmall(1)
	require.NoError(t, err)
	assert.True(t, one.Equal(ctx.GModP()))

	two, err := ctx.GPowPSmall(2)
	require.NoError(t, err)
	assert.True(t, two.Equal(ctx.GSquaredModP()))

	_, err = ctx.GPowPSmall(-1)
	assert.Error(t, err)
}
