package group

import (
	"math/big"

	"github.com/takakv/electionguard-core/util"
)

// powRadix is a fixed-base windowed exponentiation accelerator: given a
// base B and a modulus P, it precomputes a table of powers of B so that
// B^e mod P can be answered with `rows` table lookups and multiplications
// instead of a full square-and-multiply chain.
type powRadix struct {
	p     *big.Int
	base  *big.Int // the (reduced) base; used directly when k == 0
	k     uint
	rows  int
	table [][]*big.Int // table[row][digit] = base^(digit * 2^(k*row)) mod p
}

// newPowRadix builds the table for base, reduced mod p, at the window
// width dictated by option. qBitLen is the bit length of the exponent
// space (256 for production, 16 for test); rows = ceil(qBitLen / k).
// NoAcceleration builds no table: pow() falls back to big.Int.Exp.
func newPowRadix(base *big.Int, p *big.Int, qBitLen int, option PowRadixOption) *powRadix {
	k := option.windowBits()
	if k == 0 {
		return &powRadix{p: p, base: new(big.Int).Mod(base, p), k: 0}
	}

	rows := (qBitLen + int(k) - 1) / int(k)
	cols := 1 << k

	table := make([][]*big.Int, rows)
	rowBase := new(big.Int).Mod(base, p)
	for i := 0; i < rows; i++ {
		row := make([]*big.Int, cols)
		row[0] = big.NewInt(1)
		row[1] = new(big.Int).Set(rowBase)
		for c := 2; c < cols; c++ {
			row[c] = new(big.Int).Mul(row[c-1], rowBase)
			row[c].Mod(row[c], p)
		}
		table[i] = row

		if i+1 < rows {
			next := new(big.Int).Exp(rowBase, big.NewInt(1<<k), p)
			rowBase = next
		}
	}

	return &powRadix{p: p, k: k, rows: rows, table: table}
}

// pow computes base^e mod p. e must lie in [0, 2^(k*rows)), which holds
// for any valid ModQ exponent since rows*k >= the exponent's bit length.
// With NoAcceleration (k == 0, no table), it falls back to generic
// square-and-multiply modpow; the result is bit-exact either way.
func (r *powRadix) pow(e *big.Int) *big.Int {
	if r.k == 0 {
		return new(big.Int).Exp(r.base, e, r.p)
	}

	digits := util.Decompose(e, 1<<r.k, int64(r.rows))

	result := big.NewInt(1)
	for i := 0; i < r.rows; i++ {
		result.Mul(result, r.table[i][digits[i]])
		result.Mod(result, r.p)
	}
	return result
}
