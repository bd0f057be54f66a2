// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import (
	"io"
	"math/rand/v2"

	"github.com/driftrand/drift/internal/uint128"
)

// A *PRNG plugs directly into generic code written against the stdlib
// math/rand/v2 Source convention, and its Read method makes it an io.Reader
// that never errors.
var (
	_ rand.Source = (*PRNG)(nil)
	_ io.Reader   = (*PRNG)(nil)
)

// FromSource returns a generator whose state is derived from two words drawn
// from src.  This mirrors Split for an arbitrary word source: the two words
// form the 128-bit state directly with the low bit forced on, without seed
// hashing, so src is trusted to be well mixed.
func FromSource(src rand.Source) *PRNG {
	x := src.Uint64()
	y := src.Uint64()
	return &PRNG{lo: x | 1, hi: y}
}

// FromRawSeed returns a generator whose state is the little-endian
// interpretation of seed with the low bit forced on.  No seed hashing is
// applied; this exists for interoperability with conventions that hand over
// exactly 16 bytes of pre-mixed key material.  Prefer New for seeding from
// arbitrary byte strings.
func FromRawSeed(seed [16]byte) *PRNG {
	s := uint128.SetBytesLE(seed)
	return &PRNG{lo: s.Lo | 1, hi: s.Hi}
}
