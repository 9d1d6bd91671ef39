package group

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// secureRandomBytes returns n cryptographically secure random bytes. A
// crypto/rand read failure means the platform's CSPRNG is broken, which is
// not a recoverable condition for a caller of this library.
func secureRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("group: secure RNG failure: " + err.Error())
	}
	return b
}

// SafeBinaryToElementModP interprets b as a non-negative big-endian
// integer, reduces it mod P, and adds minimum if the result falls short
// of it. It always returns a valid element; it is not a uniform sampler.
func (c *GroupContext) SafeBinaryToElementModP(b []byte, minimum int64) (ElementModP, error) {
	v, err := c.safeBinaryToElementModN(b, minimum, c.p)
	if err != nil {
		return ElementModP{}, err
	}
	return ElementModP{ctx: c, v: v}, nil
}

// SafeBinaryToElementModQ is the ElementModQ analogue of
// SafeBinaryToElementModP.
func (c *GroupContext) SafeBinaryToElementModQ(b []byte, minimum int64) (ElementModQ, error) {
	v, err := c.safeBinaryToElementModN(b, minimum, c.q)
	if err != nil {
		return ElementModQ{}, err
	}
	return ElementModQ{ctx: c, v: v}, nil
}

func (c *GroupContext) safeBinaryToElementModN(b []byte, minimum int64, n *big.Int) (*big.Int, error) {
	if minimum < 0 {
		return nil, newInvalidArgumentf("minimum must be non-negative, got %d", minimum)
	}
	v := new(big.Int).SetBytes(b)
	v.Mod(v, n)
	if v.Cmp(big.NewInt(minimum)) < 0 {
		v.Add(v, big.NewInt(minimum))
	}
	return v, nil
}

// BinaryToElementModP interprets b as a non-negative big-endian integer.
// It returns false if the integer is >= P.
func (c *GroupContext) BinaryToElementModP(b []byte) (ElementModP, bool) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(c.p) >= 0 {
		return ElementModP{}, false
	}
	return ElementModP{ctx: c, v: v}, true
}

// BinaryToElementModQ interprets b as a non-negative big-endian integer.
// It returns false if the integer is >= Q.
func (c *GroupContext) BinaryToElementModQ(b []byte) (ElementModQ, bool) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(c.q) >= 0 {
		return ElementModQ{}, false
	}
	return ElementModQ{ctx: c, v: v}, true
}

// ULongToElementModP treats u as a 64-bit unsigned value. It fails with
// OutOfRangeError if u >= P (only reachable with the 16-bit test group).
func (c *GroupContext) ULongToElementModP(u uint64) (ElementModP, error) {
	v := new(big.Int).SetUint64(u)
	if v.Cmp(c.p) >= 0 {
		return ElementModP{}, newOutOfRangef("%d is not less than P", u)
	}
	return ElementModP{ctx: c, v: v}, nil
}

// ULongToElementModQ treats u as a 64-bit unsigned value. It fails with
// OutOfRangeError if u >= Q.
func (c *GroupContext) ULongToElementModQ(u uint64) (ElementModQ, error) {
	v := new(big.Int).SetUint64(u)
	if v.Cmp(c.q) >= 0 {
		return ElementModQ{}, newOutOfRangef("%d is not less than Q", u)
	}
	return ElementModQ{ctx: c, v: v}, nil
}

// Base64ToElementModP decodes s as base64, then applies
// BinaryToElementModP. It returns false on malformed base64, an
// out-of-range integer, or an empty string.
func (c *GroupContext) Base64ToElementModP(s string) (ElementModP, bool) {
	if s == "" {
		return ElementModP{}, false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ElementModP{}, false
	}
	return c.BinaryToElementModP(b)
}

// Base64ToElementModQ decodes s as base64, then applies
// BinaryToElementModQ. It returns false on malformed base64, an
// out-of-range integer, or an empty string.
func (c *GroupContext) Base64ToElementModQ(s string) (ElementModQ, bool) {
	if s == "" {
		return ElementModQ{}, false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ElementModQ{}, false
	}
	return c.BinaryToElementModQ(b)
}

// RandomElementModQ draws 32 cryptographically secure random bytes and
// feeds them through SafeBinaryToElementModQ(minimum).
func (c *GroupContext) RandomElementModQ(minimum int64) ElementModQ {
	e, err := c.SafeBinaryToElementModQ(secureRandomBytes(32), minimum)
	if err != nil {
		// minimum is always non-negative here, so safeBinaryToElementModN
		// cannot fail.
		panic(err)
	}
	return e
}
