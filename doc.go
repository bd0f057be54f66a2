// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package drift implements a fast, splittable, non-cryptographic pseudorandom
// number generator with a 128-bit state.  The generator produces one 64-bit
// word per step and derives booleans, bounded and ranged integers, floats,
// and byte fills from that word stream, reproducibly from a seed and
// bit-identically across platforms.
//
// Weak or structured seed material is avalanched by a multiply-and-byteswap
// hash, so even the all-zero seed produces a well-mixed initial state.
// Independent sub-streams can be created with Split.
//
// An individual PRNG is not safe for concurrent access.  The package-level
// functions mirror every PRNG method over a mutex-protected default instance
// that is seeded from operating system entropy during init.
//
// The generator is not cryptographically secure: its output must never be
// used for key material, and recovering the state from observed outputs is
// assumed to be feasible.  Use crypto/rand for anything security sensitive.
package drift
