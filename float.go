// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import (
	"math"
	"math/bits"
)

// Float32 returns a random float32 approximating the uniform distribution on
// the real interval [0,1].  The distribution is exactly the one obtained by
// sampling a uniform real number, rounding it to the nearest multiple of
// 2⁻⁶³, and then rounding that to a float32.  A zero result is always +0,
// never -0.
func (p *PRNG) Float32() float32 {
	x := p.Int64()
	f := math.Float32frombits(0x2000_0000) * float32(x) // 2⁻⁶³ · x in [-1,1)
	return math.Float32frombits(math.Float32bits(f) & 0x7fff_ffff)
}

// Float64 returns a random float64 approximating the uniform distribution on
// the real interval [0,1].  The distribution is exactly the one obtained by
// sampling a uniform real number, rounding it to the nearest multiple of
// 2⁻⁶³, and then rounding that to a float64.  A zero result is always +0,
// never -0.
func (p *PRNG) Float64() float64 {
	x := p.Int64()
	f := math.Float64frombits(0x3c00_0000_0000_0000) * float64(x)
	return math.Float64frombits(math.Float64bits(f) & 0x7fff_ffff_ffff_ffff)
}

// Bernoulli returns true with probability pr.  Probabilities pr <= 0 or NaN
// always yield false, and pr >= 1 always yields true.
//
// One output word is interpreted as a uniform sample t from [0,1) with
// geometric exponent resolution: the trailing zero count selects the binade
// and the top mantissa bits fill it in.  Comparing t < pr then samples the
// Bernoulli distribution exactly for every pr in [0,1] that is a multiple of
// 2⁻¹²⁸ representable as a float64, under the idealized assumption that the
// word stream is uniform.
func (p *PRNG) Bernoulli(pr float64) bool {
	x := p.Uint64()
	e := 1022 - uint64(bits.TrailingZeros64(x))
	t := math.Float64frombits(e<<52 + x>>12)
	return t < pr
}
