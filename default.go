// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import (
	"io"
	"sync"
)

// Reader returns the default generator as an io.Reader.  The returned Reader
// is safe for concurrent access.
func Reader() io.Reader {
	return globalRand
}

type lockingPRNG struct {
	*PRNG
	mu sync.Mutex
}

var globalRand *lockingPRNG

func init() {
	// FromEntropy panics if OS entropy is unavailable; there is no degraded
	// mode to fall back to.
	globalRand = &lockingPRNG{PRNG: FromEntropy()}
}

func (p *lockingPRNG) Read(s []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Read(s)
}

// Bytes fills dst with random bytes obtained from the default generator.
func Bytes(dst []byte) {
	// Mutex is acquired by (*lockingPRNG).Read.
	globalRand.Read(dst)
}

// Split derives a new private generator from the default generator.  Code
// that needs many random values should split once and sample from the child
// to avoid the locking overhead of the package-level functions.
func Split() *PRNG {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Split()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint64()
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint32()
}

// Int32 returns a uniform random int32 covering the full signed range.
func Int32() int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int32()
}

// Int64 returns a uniform random int64 covering the full signed range.
func Int64() int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int64()
}

// Bool returns a uniform random bool.
func Bool() bool {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Bool()
}

// Bernoulli returns true with probability pr.  Probabilities pr <= 0 or NaN
// always yield false, and pr >= 1 always yields true.
func Bernoulli(pr float64) bool {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Bernoulli(pr)
}

// BoundedUint32 returns a random uint32 in the inclusive range [0,n].
func BoundedUint32(n uint32) uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BoundedUint32(n)
}

// BoundedUint64 returns a random uint64 in the inclusive range [0,n].
func BoundedUint64(n uint64) uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BoundedUint64(n)
}

// BetweenUint32 returns a random uint32 in the inclusive range [lo,hi],
// wrapping forward through the maximum value when hi < lo.
func BetweenUint32(lo, hi uint32) uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BetweenUint32(lo, hi)
}

// BetweenUint64 returns a random uint64 in the inclusive range [lo,hi],
// wrapping forward through the maximum value when hi < lo.
func BetweenUint64(lo, hi uint64) uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BetweenUint64(lo, hi)
}

// BetweenInt32 returns a random int32 in the inclusive range [lo,hi],
// wrapping forward through the maximum value when hi < lo.
func BetweenInt32(lo, hi int32) int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BetweenInt32(lo, hi)
}

// BetweenInt64 returns a random int64 in the inclusive range [lo,hi],
// wrapping forward through the maximum value when hi < lo.
func BetweenInt64(lo, hi int64) int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BetweenInt64(lo, hi)
}

// Float32 returns a random float32 in [0,1] from the default generator.
func Float32() float32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Float32()
}

// Float64 returns a random float64 in [0,1] from the default generator.
func Float64() float64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Float64()
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	globalRand.Shuffle(n, swap)
}

// ShuffleSlice randomizes the order of all elements in a slice.
func ShuffleSlice[E any](s []E) {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	p := globalRand.PRNG
	for i := len(s) - 1; i > 0; i-- {
		j := int(p.BoundedUint64(uint64(i)))
		s[i], s[j] = s[j], s[i]
	}
}
