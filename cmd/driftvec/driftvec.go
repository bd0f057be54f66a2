// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// driftvec prints successive 64-bit output words as fixed-width hexadecimal,
// one per line.  The output format is the pinned regression vector format
// used by the package tests, so new reference vectors can be generated with,
// for example:
//
//	driftvec --state 00000000000000000000000000000001 -n 10 --split
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

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type config struct {
	Seed  string `short:"s" long:"seed" description:"64-bit seed, decimal or 0x-prefixed hex; the seed is hashed into the initial state"`
	State string `long:"state" description:"raw 128-bit initial state as 32 hex digits; bypasses seed hashing and must be non-zero"`
	Words uint   `short:"n" long:"words" default:"10" description:"number of words to print"`
	Split bool   `long:"split" description:"after printing, split the generator and print the child stream too"`
}

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
	for i := uint(0); i < cfg.Words; i++ {
		fmt.Printf("0x%016x\n", rng.Uint64())
	}
	if cfg.Split {
		child := rng.Split()
		fmt.Println()
		for i := uint(0); i < cfg.Words; i++ {
			fmt.Printf("0x%016x\n", child.Uint64())
		}
	}
}
