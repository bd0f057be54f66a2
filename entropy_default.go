// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package drift

import cryptorand "crypto/rand"

// sysEntropy returns 16 bytes of operating system entropy from crypto/rand.
// It panics if the read fails since proceeding with a known state would
// silently void the statistical contract.
func sysEntropy() [16]byte {
	var b [16]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("drift: crypto/rand read failed: " + err.Error())
	}
	return b
}
