package group

import (
	"encoding/base64"
	"math/big"
)

// ElementModP is an immutable residue in [0, P) together with the
// GroupContext it belongs to. Values are only ever produced by a
// GroupContext (from bytes, integers, arithmetic, or its cached
// constants); arithmetic operations always return a freshly reduced
// result and never mutate their operands.
type ElementModP struct {
	ctx   *GroupContext
	v     *big.Int
	radix *powRadix // set only via AcceleratePow
}

// ElementModQ is the ElementModP analogue over the subgroup order Q.
type ElementModQ struct {
	ctx *GroupContext
	v   *big.Int
}

// Context returns the GroupContext this element was produced by.
func (a ElementModP) Context() *GroupContext { return a.ctx }

// Context returns the GroupContext this element was produced by.
func (a ElementModQ) Context() *GroupContext { return a.ctx }

// Bytes returns the big-endian, minimum-length two's-complement encoding of
// the residue: zero encodes as a single 0x00 byte, and a leading 0x00 byte
// is added whenever the top bit of the first byte would otherwise be set.
func (a ElementModP) Bytes() []byte { return twosComplementBytes(a.v) }

// Bytes returns the big-endian, minimum-length two's-complement encoding of
// the residue, as for ElementModP.Bytes.
func (a ElementModQ) Bytes() []byte { return twosComplementBytes(a.v) }

func twosComplementBytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		return append([]byte{0}, b...)
	}
	return b
}

// Base64 returns the RFC 4648 base64 (with padding) encoding of Bytes().
func (a ElementModP) Base64() string { return base64.StdEncoding.EncodeToString(a.Bytes()) }

// Base64 returns the RFC 4648 base64 (with padding) encoding of Bytes().
func (a ElementModQ) Base64() string { return base64.StdEncoding.EncodeToString(a.Bytes()) }

// String renders the decimal residue, for debugging and test failure
// messages.
func (a ElementModP) String() string { return a.v.String() }

// String renders the decimal residue, for debugging and test failure
// messages.
func (a ElementModQ) String() string { return a.v.String() }

// InBounds reports whether the residue lies in [0, P).
func (a ElementModP) InBounds() bool { return a.v.Sign() >= 0 && a.v.Cmp(a.ctx.p) < 0 }

// InBoundsNoZero reports whether the residue lies in [1, P).
func (a ElementModP) InBoundsNoZero() bool { return a.v.Sign() > 0 && a.v.Cmp(a.ctx.p) < 0 }

// InBounds reports whether the residue lies in [0, Q).
func (a ElementModQ) InBounds() bool { return a.v.Sign() >= 0 && a.v.Cmp(a.ctx.q) < 0 }

// InBoundsNoZero reports whether the residue lies in [1, Q).
func (a ElementModQ) InBoundsNoZero() bool { return a.v.Sign() > 0 && a.v.Cmp(a.ctx.q) < 0 }

// IsValidResidue reports whether a is in the order-Q subgroup of Z_P*,
// i.e. inBounds() and a^Q mod P == 1.
func (a ElementModP) IsValidResidue() bool {
	if !a.InBounds() {
		return false
	}
	check := new(big.Int).Exp(a.v, a.ctx.q, a.ctx.p)
	return check.Cmp(big1) == 0
}

// Equal reports whether a and b carry the same residue and a compatible
// context.
func (a ElementModP) Equal(b ElementModP) bool {
	return a.ctx.compatible(b.ctx) && a.v.Cmp(b.v) == 0
}

// Equal reports whether a and b carry the same residue and a compatible
// context.
func (a ElementModQ) Equal(b ElementModQ) bool {
	return a.ctx.compatible(b.ctx) && a.v.Cmp(b.v) == 0
}

// Compare orders a and b by numeric residue. It fails with
// IncompatibleContextError if the operands' contexts disagree in
// production strength.
func (a ElementModP) Compare(b ElementModP) (int, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return 0, err
	}
	return a.v.Cmp(b.v), nil
}

// Compare orders a and b by numeric residue.
func (a ElementModQ) Compare(b ElementModQ) (int, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return 0, err
	}
	return a.v.Cmp(b.v), nil
}

var big1 = big.NewInt(1)

// Add returns a + b mod P.
func (a ElementModP) Add(b ElementModP) (ElementModP, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModP{}, err
	}
	v := new(big.Int).Add(a.v, b.v)
	v.Mod(v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}, nil
}

// Subtract returns a - b mod P (Euclidean, always non-negative).
func (a ElementModP) Subtract(b ElementModP) (ElementModP, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModP{}, err
	}
	v := new(big.Int).Sub(a.v, b.v)
	v.Mod(v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}, nil
}

// Negate returns -a mod P.
func (a ElementModP) Negate() ElementModP {
	v := new(big.Int).Neg(a.v)
	v.Mod(v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}
}

// Multiply returns a * b mod P.
func (a ElementModP) Multiply(b ElementModP) (ElementModP, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModP{}, err
	}
	v := new(big.Int).Mul(a.v, b.v)
	v.Mod(v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}, nil
}

// MultInv returns a^-1 mod P. Fails with DomainError if a is zero.
func (a ElementModP) MultInv() (ElementModP, error) {
	if a.v.Sign() == 0 {
		return ElementModP{}, newDomainErrorf("cannot invert zero mod P")
	}
	v := new(big.Int).ModInverse(a.v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}, nil
}

// Divide returns a / b mod P, i.e. a * b^-1.
func (a ElementModP) Divide(b ElementModP) (ElementModP, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModP{}, err
	}
	inv, err := b.MultInv()
	if err != nil {
		return ElementModP{}, err
	}
	return a.Multiply(inv)
}

// PowP returns a^e mod P, where e is a ModQ exponent. If a has its own
// accelerated PowRadix (see AcceleratePow) or is equal to the context's
// generator, the accelerated table is used; otherwise this falls back to
// generic modular exponentiation. Both paths are bit-exact equivalent.
func (a ElementModP) PowP(e ElementModQ) (ElementModP, error) {
	if err := a.ctx.AssertCompatible(e.ctx); err != nil {
		return ElementModP{}, err
	}
	if a.radix != nil {
		return ElementModP{ctx: a.ctx, v: a.radix.pow(e.v)}, nil
	}
	if a.v.Cmp(a.ctx.g) == 0 {
		return a.ctx.GPowP(e)
	}
	v := new(big.Int).Exp(a.v, e.v, a.ctx.p)
	return ElementModP{ctx: a.ctx, v: v}, nil
}

// AcceleratePow returns a new element equal to a, but which builds and
// caches its own fixed-base PowRadix table at the context's acceleration
// tier, so that subsequent PowP calls on it are table-accelerated.
func (a ElementModP) AcceleratePow() ElementModP {
	radix := newPowRadix(a.v, a.ctx.p, a.ctx.qBitLen, a.ctx.option)
	return ElementModP{ctx: a.ctx, v: a.v, radix: radix}
}

// Add returns a + b mod Q.
func (a ElementModQ) Add(b ElementModQ) (ElementModQ, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModQ{}, err
	}
	v := new(big.Int).Add(a.v, b.v)
	v.Mod(v, a.ctx.q)
	return ElementModQ{ctx: a.ctx, v: v}, nil
}

// Subtract returns a - b mod Q (Euclidean, always non-negative).
func (a ElementModQ) Subtract(b ElementModQ) (ElementModQ, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModQ{}, err
	}
	v := new(big.Int).Sub(a.v, b.v)
	v.Mod(v, a.ctx.q)
	return ElementModQ{ctx: a.ctx, v: v}, nil
}

// Negate returns -a mod Q.
func (a ElementModQ) Negate() ElementModQ {
	v := new(big.Int).Neg(a.v)
	v.Mod(v, a.ctx.q)
	return ElementModQ{ctx: a.ctx, v: v}
}

// Multiply returns a * b mod Q.
func (a ElementModQ) Multiply(b ElementModQ) (ElementModQ, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModQ{}, err
	}
	v := new(big.Int).Mul(a.v, b.v)
	v.Mod(v, a.ctx.q)
	return ElementModQ{ctx: a.ctx, v: v}, nil
}

// MultInv returns a^-1 mod Q. Fails with DomainError if a is zero.
func (a ElementModQ) MultInv() (ElementModQ, error) {
	if a.v.Sign() == 0 {
		return ElementModQ{}, newDomainErrorf("cannot invert zero mod Q")
	}
	v := new(big.Int).ModInverse(a.v, a.ctx.q)
	return ElementModQ{ctx: a.ctx, v: v}, nil
}

// Divide returns a / b mod Q.
func (a ElementModQ) Divide(b ElementModQ) (ElementModQ, error) {
	if err := a.ctx.AssertCompatible(b.ctx); err != nil {
		return ElementModQ{}, err
	}
	inv, err := b.MultInv()
	if err != nil {
		return ElementModQ{}, err
	}
	return a.Multiply(inv)
}
