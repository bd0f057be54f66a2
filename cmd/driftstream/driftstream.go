// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// driftstream writes a stream of generated bytes to standard output.  It is
// intended for piping into statistical test suites such as PractRand or
// dieharder:
//
//	driftstream -s 0x1 | RNG_test stdin64
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/driftrand/drift"
	"github.com/driftrand/drift/internal/uint128"
	flags "github.com/jessevdk/go-flags"
)

const bufSize = 64 * 1024

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type config struct {
	Seed  string `short:"s" long:"seed" description:"64-bit seed, decimal or 0x-prefixed hex; the seed is hashed into the initial state"`
	State string `long:"state" description:"raw 128-bit initial state as 32 hex digits; bypasses seed hashing and must be non-zero"`
	Count uint64 `short:"n" long:"count" description:"number of bytes to write before exiting (0 = unbounded)"`
}

// newRNG constructs the generator selected by the options, defaulting to OS
// entropy when neither a seed nor a state is given.
func newRNG(cfg *config) *drift.PRNG {
	switch {
	case cfg.Seed != "" && cfg.State != "":
		fatalf("options --seed and --state are mutually exclusive")
	case cfg.State != "":
		b, err := hex.DecodeString(cfg.State)
		if err != nil || len(b) != 16 {
			fatalf("invalid state %q: must be exactly 32 hex digits", cfg.State)
		}
		// The hex text is big endian; reverse into the little-endian byte
		// order the state representation uses.
		var raw [16]byte
		for i := range raw {
			raw[i] = b[15-i]
		}
		s := uint128.SetBytesLE(raw)
		if s.IsZero() {
			fatalf("invalid state: must be non-zero")
		}
		return drift.FromState(s.Lo, s.Hi)
	case cfg.Seed != "":
		seed, err := strconv.ParseUint(cfg.Seed, 0, 64)
		if err != nil {
			fatalf("invalid seed %q: %v", cfg.Seed, err)
		}
		return drift.FromUint64(seed)
	}
	return drift.FromEntropy()
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	rng := newRNG(&cfg)
	out := os.Stdout
	buf := make([]byte, bufSize)
	var written uint64
	for {
		b := buf
		if cfg.Count != 0 {
			if remaining := cfg.Count - written; remaining < bufSize {
				b = buf[:remaining]
			}
		}
		rng.Bytes(b)
		n, err := out.Write(b)
		written += uint64(n)
		if err != nil {
			// A closed pipe is the normal way for a consumer to stop the
			// stream.
			os.Exit(0)
		}
		if cfg.Count != 0 && written >= cfg.Count {
			return
		}
	}
}
