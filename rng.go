// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import (
	"encoding/binary"
	"math/bits"

	"github.com/driftrand/drift/internal/uint128"
)

// PRNG is a deterministic pseudorandom number generator with a 128-bit state.
// Every sampling method advances the state in place.  The state is never zero
// after construction or after any number of steps.
//
// PRNG methods are not safe for concurrent access.
type PRNG struct {
	lo uint64
	hi uint64
}

// SeedSize is the length in bytes of the byte-array seed accepted by New.
const SeedSize = 15

// New returns a generator whose initial state is derived by hashing the given
// byte-array seed.  Any seed is acceptable, including all zeros; related or
// low-entropy seeds still produce uncorrelated output streams.
func New(seed [SeedSize]byte) *PRNG {
	// Pack all 15 bytes into a 128-bit value using two overlapping
	// little-endian reads, then set a marker bit above them so the hash
	// input is never zero.
	x := binary.LittleEndian.Uint64(seed[0:8])
	y := binary.LittleEndian.Uint64(seed[7:15])
	s := uint128.Uint128{Lo: x, Hi: y >> 8}
	s.Hi |= 1 << 56
	s = seedHash(s)
	return &PRNG{lo: s.Lo, hi: s.Hi}
}

// FromUint64 returns a generator whose initial state is derived by hashing
// the given integer seed.
func FromUint64(seed uint64) *PRNG {
	s := seedHash(uint128.Uint128{Lo: seed, Hi: 1})
	return &PRNG{lo: s.Lo, hi: s.Hi}
}

// FromState returns a generator with the exact 128-bit state (lo, hi).  The
// state must be non-zero and should be well mixed; a state that is simply a
// small integer produces a visibly non-random prefix in the output stream.
//
// Use New or FromUint64 to initialize a generator deterministically from a
// small or otherwise weak seed.  FromState exists for resuming a generator
// from a checkpoint captured with State.
func FromState(lo, hi uint64) *PRNG {
	return &PRNG{lo: lo, hi: hi}
}

// FromEntropy returns a generator seeded from operating system entropy.  It
// panics if the entropy read fails, since continuing with a known state would
// silently void the statistical contract.
func FromEntropy() *PRNG {
	s := uint128.SetBytesLE(sysEntropy())
	return &PRNG{lo: s.Lo | 1, hi: s.Hi}
}

// State returns the current 128-bit state as two 64-bit halves.  The pair can
// be persisted and later passed to FromState to resume the exact output
// stream.
func (p *PRNG) State() (lo, hi uint64) {
	return p.lo, p.hi
}

// Split derives a new generator from two words drawn from p.  The child
// stream is independent from the parent stream for all practical purposes,
// and the parent is advanced by exactly two steps.
func (p *PRNG) Split() *PRNG {
	x := p.Uint64()
	y := p.Uint64()
	return &PRNG{lo: x | 1, hi: y}
}

// Uint64 returns a uniform random uint64 and advances the state one step.
//
// The state update is a linear map over GF(2) with full period 2¹²⁸-1 over
// the non-zero states; the shift and rotation amounts 19 and 7 were selected
// by exhaustive offline search (see cmd/driftperiod) and must not be changed.
// The output word mixes in the non-linear term x² so that consecutive outputs
// do not satisfy a linear relation.
func (p *PRNG) Uint64() uint64 {
	x := p.lo
	y := p.hi
	u := y ^ y>>19
	v := x ^ bits.RotateLeft64(y, -7)
	hi, lo := bits.Mul64(x, x)
	z := y + (lo ^ hi)
	p.lo = u
	p.hi = v
	return z
}

// Uint32 returns a uniform random uint32.
func (p *PRNG) Uint32() uint32 {
	return uint32(p.Uint64())
}

// Int32 returns a uniform random int32.  Unlike the stdlib convention, the
// result covers the full signed range, negative values included.
func (p *PRNG) Int32() int32 {
	return int32(uint32(p.Uint64()))
}

// Int64 returns a uniform random int64 covering the full signed range.
func (p *PRNG) Int64() int64 {
	return int64(p.Uint64())
}

// Bool returns a uniform random bool.
func (p *PRNG) Bool() bool {
	return p.Int64() < 0
}
