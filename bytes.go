// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift

import "encoding/binary"

// Bytes fills dst with independent uniformly distributed bytes.  A zero
// length dst is a no-op that does not advance the state.
//
// The fill is deterministic in the state and the length and is prefix
// consistent: for a given starting state, the first n bytes written are the
// same for every dst of length >= n.  Filling is defined entirely in terms
// of the little-endian
// encodings of successive output words, so the result is identical across
// platforms.
func (p *PRNG) Bytes(dst []byte) {
	// Two words per 16-byte chunk while at least 17 bytes remain, so the
	// tail always has 1 to 16 bytes left for the partial writes below.
	for len(dst) >= 17 {
		binary.LittleEndian.PutUint64(dst[0:8], p.Uint64())
		binary.LittleEndian.PutUint64(dst[8:16], p.Uint64())
		dst = dst[16:]
	}

	if len(dst) == 0 {
		return
	}

	if len(dst) >= 9 {
		binary.LittleEndian.PutUint64(dst[0:8], p.Uint64())
		dst = dst[8:]
	}

	// 1 to 8 bytes remain.  Draw one final word and keep its leading bytes.
	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], p.Uint64())
	copy(dst, tail[:])
}

// Read fills s with random bytes from the generator.  It implements
// io.Reader and never errors.  Read and Bytes share one filling routine, so
// reading into a fixed-size array yields byte-for-byte the same result as a
// Bytes fill of the same length.
func (p *PRNG) Read(s []byte) (n int, err error) {
	p.Bytes(s)
	return len(s), nil
}
