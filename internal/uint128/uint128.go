// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uint128 implements the handful of highly optimized fixed precision
// operations on unsigned 128-bit integers that the generator seeding code
// needs.  All arithmetic is performed modulo 2¹²⁸.
package uint128

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Uint128 implements an unsigned 128-bit integer as two 64-bit limbs.  The
// zero value is ready to use.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// SetBytesLE interprets b as an unsigned little-endian 128-bit integer and
// returns the result.
func SetBytesLE(b [16]byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// IsZero returns whether n represents the value 0.
func (n Uint128) IsZero() bool {
	return n.Lo|n.Hi == 0
}

// Mul returns the product n * m modulo 2¹²⁸.
//
// The cross product of the high limbs does not contribute to the truncated
// result, so only three 64-bit multiplies are needed.
func (n Uint128) Mul(m Uint128) Uint128 {
	hi, lo := bits.Mul64(n.Lo, m.Lo)
	hi += n.Lo*m.Hi + n.Hi*m.Lo
	return Uint128{Lo: lo, Hi: hi}
}

// SwapBytes returns n with the order of its 16 bytes reversed.
func (n Uint128) SwapBytes() Uint128 {
	return Uint128{
		Lo: bits.ReverseBytes64(n.Hi),
		Hi: bits.ReverseBytes64(n.Lo),
	}
}

// String returns the value as a fixed-width 32-digit hexadecimal number.
func (n Uint128) String() string {
	return fmt.Sprintf("%016x%016x", n.Hi, n.Lo)
}
