package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccelerationTiersAgree checks that G^e mod P is bit-exact across
// every acceleration tier, and against a plain big.Int.Exp computation.
func TestAccelerationTiersAgree(t *testing.T) {
	tiers := []PowRadixOption{NoAcceleration, LowMemoryUse, HighMemoryUse, ExtremeMemoryUse}

	exponents := []int64{0, 1, 2, 3, 41, 12345, 32632}

	for _, tier := range tiers {
		ctx := Test(tier)
		for _, e := range exponents {
			eq, err := ctx.ULongToElementModQ(uint64(e))
			require.NoError(t, err)

			got, err := ctx.GPowP(eq)
			require.NoError(t, err)

			want := new(big.Int).Exp(ctx.g, big.NewInt(e), ctx.p)
			assert.Equal(t, 0, got.v.Cmp(want), "tier %v exponent %d: got %s want %s", tier, e, got, want)
		}
	}
}

func TestAcceleratePowMatchesUnaccelerated(t *testing.T) {
	ctx := Test(HighMemoryUse)

	base := ctx.RandomElementModQ(1)
	baseElem, err := ctx.GPowP(base)
	require.NoError(t, err)

	accelerated := baseElem.AcceleratePow()

	exponent := ctx.RandomElementModQ(0)

	fromPlain, err := baseElem.PowP(exponent)
	require.NoError(t, err)
	fromAccel, err := accelerated.PowP(exponent)
	require.NoError(t, err)

	assert.True(t, fromPlain.Equal(fromAccel))
}

func TestPowRadixNoAccelerationMatchesModPow(t *testing.T) {
	radix := newPowRadix(big.NewInt(3), big.NewInt(65267), 16, NoAcceleration)
	e := big.NewInt(12345)
	got := radix.pow(e)
	want := new(big.Int).Exp(big.NewInt(3), e, big.NewInt(65267))
	assert.Equal(t, 0, got.Cmp(want))
}

func TestPowRadixWindowedMatchesModPow(t *testing.T) {
	p := big.NewInt(65267)
	base := big.NewInt(3)
	for _, opt := range []PowRadixOption{LowMemoryUse, HighMemoryUse, ExtremeMemoryUse} {
		radix := newPowRadix(base, p, 16, opt)
		for _, e := range []int64{0, 1, 2, 5, 12345, 32632, 65535} {
			got := radix.pow(big.NewInt(e))
			want := new(big.Int).Exp(base, big.NewInt(e), p)
			assert.Equal(t, 0, got.Cmp(want), "tier %v exponent %d", opt, e)
		}
	}
}
