// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift_test

import (
	"io"
	"sync"
	"testing"

	"github.com/driftrand/drift"
)

// TestDefaultFunctions exercises every package-level mirror of the instance
// operations.  The default generator is entropy seeded, so only domain
// properties can be asserted.
func TestDefaultFunctions(t *testing.T) {
	drift.Uint64()
	drift.Uint32()
	drift.Int32()
	drift.Int64()
	drift.Bool()

	if drift.Bernoulli(0) {
		t.Error("Bernoulli(0) returned true")
	}
	if !drift.Bernoulli(1) {
		t.Error("Bernoulli(1) returned false")
	}
	if got := drift.BoundedUint32(0); got != 0 {
		t.Errorf("BoundedUint32(0) = %d", got)
	}
	if got := drift.BoundedUint64(5); got > 5 {
		t.Errorf("BoundedUint64(5) = %d", got)
	}
	if got := drift.BetweenUint32(3, 7); got < 3 || got > 7 {
		t.Errorf("BetweenUint32(3,7) = %d", got)
	}
	if got := drift.BetweenUint64(3, 7); got < 3 || got > 7 {
		t.Errorf("BetweenUint64(3,7) = %d", got)
	}
	if got := drift.BetweenInt32(-2, 2); got < -2 || got > 2 {
		t.Errorf("BetweenInt32(-2,2) = %d", got)
	}
	if got := drift.BetweenInt64(-2, 2); got < -2 || got > 2 {
		t.Errorf("BetweenInt64(-2,2) = %d", got)
	}
	if got := drift.Float32(); got < 0 || got > 1 {
		t.Errorf("Float32() = %v", got)
	}
	if got := drift.Float64(); got < 0 || got > 1 {
		t.Errorf("Float64() = %v", got)
	}

	var buf [32]byte
	drift.Bytes(buf[:])

	s := []int{1, 2, 3, 4, 5}
	drift.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	drift.ShuffleSlice(s)
	var sum int
	for _, v := range s {
		sum += v
	}
	if sum != 15 {
		t.Errorf("shuffles did not permute: %v", s)
	}
}

// TestDefaultSplit ensures Split hands out generators that are detached from
// the default instance.
func TestDefaultSplit(t *testing.T) {
	a := drift.Split()
	b := drift.Split()

	alo, ahi := a.State()
	blo, bhi := b.State()
	if alo|ahi == 0 || blo|bhi == 0 {
		t.Fatal("split produced a zero state")
	}
	if alo == blo && ahi == bhi {
		t.Fatal("consecutive splits produced identical states")
	}
}

// TestDefaultReader ensures the io.Reader view of the default generator
// fills buffers fully and never errors.
func TestDefaultReader(t *testing.T) {
	r := drift.Reader()
	buf := make([]byte, 100)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		t.Fatalf("ReadFull errored: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("ReadFull read %d bytes", n)
	}
}

// TestDefaultConcurrent ensures the package-level functions are safe for
// concurrent use.  Run with the race detector to make this meaningful.
func TestDefaultConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf [16]byte
			for j := 0; j < 1000; j++ {
				drift.Uint64()
				drift.BoundedUint64(100)
				drift.Bytes(buf[:])
			}
		}()
	}
	wg.Wait()
}
