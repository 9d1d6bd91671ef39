// Package group implements the finite-field group arithmetic layer of the
// ElectionGuard-style exponential ElGamal core: a GroupContext over a large
// safe prime P and its order-Q subgroup, immutable ElementModP/ElementModQ
// values, a fixed-base PowRadix accelerator, and a memoized DLog solver.
package group

import (
	"math/big"
	"sync"
)

// PowRadixOption selects the memory/speed tradeoff of the fixed-base
// exponentiation accelerator built over a GroupContext's generator.
type PowRadixOption int

const (
	// NoAcceleration disables the table and falls back to generic modpow.
	NoAcceleration PowRadixOption = iota
	// LowMemoryUse builds an 8-bit-window table (~4 MB for production).
	LowMemoryUse
	// HighMemoryUse builds a 12-bit-window table (~44 MB for production).
	HighMemoryUse
	// ExtremeMemoryUse builds a 16-bit-window table (~500 MB for production).
	ExtremeMemoryUse
)

// windowBits returns the concrete window width k for a tier, per
// SPEC_FULL.md's tier table.
func (o PowRadixOption) windowBits() uint {
	switch o {
	case LowMemoryUse:
		return 8
	case HighMemoryUse:
		return 12
	case ExtremeMemoryUse:
		return 16
	default:
		return 0
	}
}

// GroupContext holds the parameters of an ElectionGuard-style group: a
// large safe prime P, a prime Q dividing P-1, a generator G of the
// order-Q subgroup, and the cofactor R = (P-1)/Q. A context is immutable
// after construction and safe to share across goroutines without further
// synchronization; its PowRadix table and DLog cache are the only mutable
// state, and both guard themselves internally.
type GroupContext struct {
	p, q, g, r         *big.Int
	productionStrength bool
	option             PowRadixOption
	qBitLen            int

	zeroP, oneP, twoP, gP, gSquaredP, qP *ElementModP
	zeroQ, oneQ, twoQ                    *ElementModQ

	radixOnce sync.Once
	radix     *powRadix

	dlog *dLogCache
}

func newContext(params parameters, productionStrength bool, option PowRadixOption, qBitLen int) *GroupContext {
	ctx := &GroupContext{
		p:                  params.p,
		q:                  params.q,
		g:                  params.g,
		r:                  params.r,
		productionStrength: productionStrength,
		option:             option,
		qBitLen:            qBitLen,
	}

	ctx.zeroP = &ElementModP{ctx: ctx, v: big.NewInt(0)}
	ctx.oneP = &ElementModP{ctx: ctx, v: big.NewInt(1)}
	ctx.twoP = &ElementModP{ctx: ctx, v: big.NewInt(2)}
	ctx.gP = &ElementModP{ctx: ctx, v: new(big.Int).Mod(ctx.g, ctx.p)}
	ctx.gSquaredP = &ElementModP{ctx: ctx, v: new(big.Int).Exp(ctx.g, big.NewInt(2), ctx.p)}
	ctx.qP = &ElementModP{ctx: ctx, v: new(big.Int).Mod(ctx.q, ctx.p)}

	ctx.zeroQ = &ElementModQ{ctx: ctx, v: big.NewInt(0)}
	ctx.oneQ = &ElementModQ{ctx: ctx, v: big.NewInt(1)}
	ctx.twoQ = &ElementModQ{ctx: ctx, v: big.NewInt(2)}

	ctx.dlog = newDLogCache(ctx)

	return ctx
}

var (
	prodMu    sync.Mutex
	prodCtxes = map[PowRadixOption]*GroupContext{}

	testMu    sync.Mutex
	testCtxes = map[PowRadixOption]*GroupContext{}
)

// Production returns the process-wide singleton GroupContext for the
// 4096-bit production parameters at the given acceleration tier. Building
// the PowRadix table is expensive, so the context is constructed once per
// tier and shared by reference; it is never rebuilt or torn down before
// process exit.
func Production(option PowRadixOption) *GroupContext {
	prodMu.Lock()
	defer prodMu.Unlock()
	if ctx, ok := prodCtxes[option]; ok {
		return ctx
	}
	ctx := newContext(productionParameters(), true, option, 256)
	prodCtxes[option] = ctx
	return ctx
}

// Test returns the process-wide singleton GroupContext for the 16-bit test
// parameters (P=65267, Q=32633, G=3, R=2) at the given acceleration tier.
func Test(option PowRadixOption) *GroupContext {
	testMu.Lock()
	defer testMu.Unlock()
	if ctx, ok := testCtxes[option]; ok {
		return ctx
	}
	ctx := newContext(testParameters(), false, option, 16)
	testCtxes[option] = ctx
	return ctx
}

// P returns the field prime.
func (c *GroupContext) P() *big.Int { return new(big.Int).Set(c.p) }

// Q returns the subgroup order.
func (c *GroupContext) Q() *big.Int { return new(big.Int).Set(c.q) }

// R returns the cofactor (P-1)/Q.
func (c *GroupContext) R() *big.Int { return new(big.Int).Set(c.r) }

// IsProductionStrength reports whether this context uses the 4096-bit
// production parameters rather than the 16-bit test parameters.
func (c *GroupContext) IsProductionStrength() bool { return c.productionStrength }

// ZeroModP returns the cached 0 mod P constant.
func (c *GroupContext) ZeroModP() ElementModP { return *c.zeroP }

// OneModP returns the cached 1 mod P constant.
func (c *GroupContext) OneModP() ElementModP { return *c.oneP }

// TwoModP returns the cached 2 mod P constant.
func (c *GroupContext) TwoModP() ElementModP { return *c.twoP }

// GModP returns the cached generator G as a ModP element.
func (c *GroupContext) GModP() ElementModP { return *c.gP }

// GSquaredModP returns the cached G^2 mod P constant.
func (c *GroupContext) GSquaredModP() ElementModP { return *c.gSquaredP }

// QModP returns Q represented as an element of the P-group, used as the
// exponent when validating subgroup membership.
func (c *GroupContext) QModP() ElementModP { return *c.qP }

// ZeroModQ returns the cached 0 mod Q constant.
func (c *GroupContext) ZeroModQ() ElementModQ { return *c.zeroQ }

// OneModQ returns the cached 1 mod Q constant.
func (c *GroupContext) OneModQ() ElementModQ { return *c.oneQ }

// TwoModQ returns the cached 2 mod Q constant.
func (c *GroupContext) TwoModQ() ElementModQ { return *c.twoQ }

// AssertCompatible returns an IncompatibleContextError unless other shares
// this context's production-strength flag.
func (c *GroupContext) AssertCompatible(other *GroupContext) error {
	if c.productionStrength != other.productionStrength {
		return newIncompatibleContext(c, other)
	}
	return nil
}

func (c *GroupContext) compatible(other *GroupContext) bool {
	return c == other || c.productionStrength == other.productionStrength
}

// gRadix returns the context's PowRadix over G, building it at most once.
func (c *GroupContext) gRadix() *powRadix {
	c.radixOnce.Do(func() {
		c.radix = newPowRadix(c.g, c.p, c.qBitLen, c.option)
	})
	return c.radix
}

// GPowP computes G^e mod P, accelerated through the context's PowRadix.
func (c *GroupContext) GPowP(e ElementModQ) (ElementModP, error) {
	if err := c.AssertCompatible(e.ctx); err != nil {
		return ElementModP{}, err
	}
	v := c.gRadix().pow(e.v)
	return ElementModP{ctx: c, v: v}, nil
}

// GPowPSmall returns G^e mod P for e >= 0. The results for e in {0,1,2}
// come from the cached constants; larger values fall back to GPowP.
func (c *GroupContext) GPowPSmall(e int) (ElementModP, error) {
	switch e {
	case 0:
		return c.OneModP(), nil
	case 1:
		return c.GModP(), nil
	case 2:
		return c.GSquaredModP(), nil
	}
	if e < 0 {
		return ElementModP{}, newInvalidArgumentf("GPowPSmall: negative exponent %d", e)
	}
	eq, err := c.ULongToElementModQ(uint64(e))
	if err != nil {
		return ElementModP{}, err
	}
	return c.GPowP(eq)
}

// DLog returns the least non-negative x with G^x = h mod P, or false if x
// would exceed the solver's cap.
func (c *GroupContext) DLog(h ElementModP) (int, bool) {
	return c.dlog.solve(h.v)
}
