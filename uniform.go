// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import "math/bits"

// BoundedUint64 returns a random uint64 in the range [0,n].  Note that the
// upper bound is inclusive.
//
// The procedure computes
//
//	floor((k*n + k) / 2¹²⁸)
//
// where k is a 128-bit value assembled from two output words.  It is branch
// free and never loops: rather than rejection sampling, it accepts a bias
// that is bounded below 2⁻¹²⁸ for every n, which is far smaller than any
// statistical test can resolve.
//
//	    y x                  x        y 0      v v 0
//	*     n            *     n    *     n    +   u _
//	+   y x  ------->  +     x    +   y 0
//	-------            -------    -------    -------
//	  z _ _                u _      v v 0      z _ _
func (p *PRNG) BoundedUint64(n uint64) uint64 {
	x := p.Uint64()
	y := p.Uint64()

	// u = (x*n + x) >> 64
	uhi, ulo := bits.Mul64(x, n)
	_, c := bits.Add64(ulo, x, 0)
	u := uhi + c

	// v = y*n + y as a full 128-bit value
	vhi, vlo := bits.Mul64(y, n)
	vlo, c = bits.Add64(vlo, y, 0)
	vhi += c

	// z = (u + v) >> 64
	_, c = bits.Add64(vlo, u, 0)
	return vhi + c
}

// BoundedUint32 returns a random uint32 in the range [0,n].  Note that the
// upper bound is inclusive.
func (p *PRNG) BoundedUint32(n uint32) uint32 {
	return uint32(p.BoundedUint64(uint64(n)))
}

// BetweenUint64 returns a random uint64 in the range [lo,hi].  Both bounds
// are inclusive, and hi < lo describes the range that wraps forward from lo
// through the maximum value around to hi.
func (p *PRNG) BetweenUint64(lo, hi uint64) uint64 {
	return lo + p.BoundedUint64(hi-lo)
}

// BetweenUint32 returns a random uint32 in the range [lo,hi].  Both bounds
// are inclusive, and hi < lo describes the range that wraps forward from lo
// through the maximum value around to hi.
func (p *PRNG) BetweenUint32(lo, hi uint32) uint32 {
	return lo + p.BoundedUint32(hi-lo)
}

// BetweenInt64 returns a random int64 in the range [lo,hi].  Both bounds are
// inclusive, and hi < lo describes the range that wraps forward from lo
// through the maximum value around to hi.
func (p *PRNG) BetweenInt64(lo, hi int64) int64 {
	return int64(p.BetweenUint64(uint64(lo), uint64(hi)))
}

// BetweenInt32 returns a random int32 in the range [lo,hi].  Both bounds are
// inclusive, and hi < lo describes the range that wraps forward from lo
// through the maximum value around to hi.
func (p *PRNG) BetweenInt32(lo, hi int32) int32 {
	return int32(p.BetweenUint32(uint32(lo), uint32(hi)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("drift: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle.  BoundedUint64 has an inclusive upper bound, so
	// j is drawn from [0,i] directly.
	for i := n - 1; i > 0; i-- {
		j := int(p.BoundedUint64(uint64(i)))
		swap(i, j)
	}
}
