// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/driftrand/drift"
)

// TestBytesVectors ensures byte fills are exactly the concatenated
// little-endian encodings of successive output words, including the partial
// final chunk, by checking fills against the pinned word vector for the
// minimal state.
func TestBytesVectors(t *testing.T) {
	tests := []struct {
		n    int
		want string // hex
	}{
		{n: 0, want: ""},
		{n: 1, want: "01"},
		{n: 5, want: "0100000000"},
		{n: 8, want: "0100000000000000"},
		{n: 16, want: "01000000000000000100000000000000"},
		{n: 21, want: "010000000000000001000000000000000100000000"},
		{n: 24, want: "010000000000000001000000000000000100000000000002"},
	}

	for _, test := range tests {
		rng := drift.FromState(1, 0)
		got := make([]byte, test.n)
		rng.Bytes(got)
		if gotHex := hex.EncodeToString(got); gotHex != test.want {
			t.Errorf("Bytes fill of length %d:\ngot: %s\nwant: %s",
				test.n, gotHex, test.want)
		}
	}
}

// TestBytesPrefixConsistency ensures that for a fixed starting state, every
// fill is an exact prefix of any longer fill: the chunking always packs the
// little-endian bytes of consecutive words, so the fill length only decides
// where the stream is cut off.  This is the property that makes fixed-size
// array sampling and arbitrary-length filling interchangeable.
func TestBytesPrefixConsistency(t *testing.T) {
	const max = 64
	full := make([]byte, max)
	drift.FromUint64(1).Bytes(full)

	for n := 0; n <= max; n++ {
		got := make([]byte, n)
		drift.FromUint64(1).Bytes(got)
		if !bytes.Equal(got, full[:n]) {
			t.Fatalf("fill of length %d is not a prefix of the full fill:\n"+
				"got: %swant: %s", n, spew.Sdump(got), spew.Sdump(full[:n]))
		}
	}
}

// TestBytesZeroLength ensures a zero-length fill draws nothing.
func TestBytesZeroLength(t *testing.T) {
	rng := drift.FromUint64(6)
	lo, hi := rng.State()
	rng.Bytes(nil)
	rng.Bytes([]byte{})
	if lo2, hi2 := rng.State(); lo2 != lo || hi2 != hi {
		t.Fatal("zero-length fill advanced the state")
	}
}

// TestBytesWordConsumption ensures the documented chunking draws the
// expected number of words for each fill length.
func TestBytesWordConsumption(t *testing.T) {
	tests := []struct {
		n     int
		words int
	}{
		{0, 0}, {1, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3},
		{24, 3}, {25, 4}, {32, 4}, {33, 5}, {64, 8},
	}
	for _, test := range tests {
		rng := drift.FromUint64(9)
		ref := drift.FromUint64(9)
		rng.Bytes(make([]byte, test.n))
		for i := 0; i < test.words; i++ {
			ref.Uint64()
		}
		rlo, rhi := rng.State()
		flo, fhi := ref.State()
		if rlo != flo || rhi != fhi {
			t.Errorf("fill of length %d did not consume %d words", test.n, test.words)
		}
	}
}

// TestReadMatchesBytes ensures the io.Reader surface shares the filling
// routine byte for byte.
func TestReadMatchesBytes(t *testing.T) {
	a := drift.FromUint64(4)
	b := drift.FromUint64(4)

	for _, n := range []int{0, 3, 8, 17, 40} {
		ba := make([]byte, n)
		bb := make([]byte, n)
		a.Bytes(ba)
		m, err := b.Read(bb)
		if err != nil {
			t.Fatalf("Read(%d) errored: %v", n, err)
		}
		if m != n {
			t.Fatalf("Read(%d) returned %d", n, m)
		}
		if !bytes.Equal(ba, bb) {
			t.Fatalf("Read(%d) differs from Bytes fill", n)
		}
	}
}
