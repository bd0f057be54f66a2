// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import "github.com/driftrand/drift/internal/uint128"

// seedMultiplier is the nearest odd integer to γ·2¹²⁸, where γ is the
// Euler-Mascheroni constant.  γ was chosen because it is a well-known
// mathematical constant in (0.5, 1.0) with no structural relationship to the
// shift and rotation constants of the state transition.
var seedMultiplier = uint128.Uint128{
	Lo: 0xd1be3f810152cb57,
	Hi: 0x93c467e37db0c7a4,
}

// seedHash avalanches packed seed material into an initial state that is
// indistinguishable from a state produced by running the generator.
//
// Multiplication by an odd constant modulo 2¹²⁸ is a bijection, and the byte
// reversal between rounds propagates high-half mixing back into the low bits,
// so two interleaved rounds of each avalanche every input bit into every
// output bit.  Because the input is non-zero by construction and each step is
// a bijection, the result is never zero.  The hash is not intended to resist
// adversarial seed choice.
func seedHash(s uint128.Uint128) uint128.Uint128 {
	s = s.Mul(seedMultiplier)
	s = s.SwapBytes()
	s = s.Mul(seedMultiplier)
	s = s.SwapBytes()
	s = s.Mul(seedMultiplier)
	return s
}
