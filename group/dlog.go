package group

import (
	"math/big"
	"sync"
)

// dLogMax is the largest exponent the memoized solver will search before
// reporting failure.
const dLogMax = 1_000_000_000

// dLogCache is a thread-safe, monotonically-extended memoization table
// mapping G^x mod P back to x. Readers take the read lock to consult the
// table; a miss escalates to the write lock, which re-checks the table
// (another goroutine may have satisfied the request first) and then
// extends the table one multiplication at a time until it reaches h or
// the cap. Entries already inserted are never removed, mirroring
// Consensys-go-corset's field_pool.go double-checked-locking pool.
type dLogCache struct {
	ctx *GroupContext

	mu          sync.RWMutex
	table       map[string]int
	maxExponent int
	maxElement  *big.Int
}

func newDLogCache(ctx *GroupContext) *dLogCache {
	return &dLogCache{
		ctx:         ctx,
		table:       map[string]int{"1": 0},
		maxExponent: 0,
		maxElement:  big.NewInt(1),
	}
}

// solve returns the least non-negative x with G^x = h mod P, or false if
// x would exceed dLogMax.
func (d *dLogCache) solve(h *big.Int) (int, bool) {
	key := h.String()

	d.mu.RLock()
	if x, ok := d.table[key]; ok {
		d.mu.RUnlock()
		return x, true
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if x, ok := d.table[key]; ok {
		return x, true
	}

	for d.maxElement.Cmp(h) != 0 {
		if d.maxExponent >= dLogMax {
			return 0, false
		}
		d.maxExponent++
		d.maxElement.Mul(d.maxElement, d.ctx.g)
		d.maxElement.Mod(d.maxElement, d.ctx.p)
		d.table[d.maxElement.String()] = d.maxExponent
	}

	return d.maxExponent, true
}
