// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package drift

import "golang.org/x/sys/unix"

// sysEntropy returns 16 bytes of operating system entropy via getrandom(2),
// which blocks until the kernel entropy pool is initialized and cannot fail
// once it is.  It panics on any other error since proceeding with a known
// state would silently void the statistical contract.
func sysEntropy() [16]byte {
	var b [16]byte
	for n := 0; n < len(b); {
		m, err := unix.Getrandom(b[n:], 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic("drift: getrandom failed: " + err.Error())
		}
		n += m
	}
	return b
}
