// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// driftperiod is the offline search that establishes the full-period
// property of the generator's state transition.
//
// The state update (the output word aside) is linear over GF(2), so a
// candidate transition with shift a and rotation b is a 128×128 bit matrix
// M.  The transition has period 2¹²⁸-1 over the non-zero states exactly when
// M^(2¹²⁸) == M and M^((2¹²⁸-1)/p) != I for every prime factor p of 2¹²⁸-1.
// The tool checks every candidate pair in the requested range and reports
// the ones with full period; the shipped generator uses (a, b) = (19, 7),
// which must appear in the output for the generator's period claim to hold.
//
// This is a design-time verification: the generator itself never re-checks
// the property at runtime.
package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/jrick/bitset"
)

var log = slog.Disabled

// m8 is an 8×8 matrix over GF(2), one bit per entry, row i in byte i.
type m8 uint64

const (
	m8Zero m8 = 0
	m8ID   m8 = 0x8040201008040201
)

// mul returns the matrix product x*y over GF(2).  Bit k of every byte lane
// of x is spread with the 0x01 lane mask and multiplied by row k of y; lanes
// never carry into each other and GF(2) addition of the partial products is
// XOR.
func (x m8) mul(y m8) m8 {
	const lanes = 0x0101010101010101
	return m8(0 ^
		(uint64(x)>>0&lanes)*(uint64(y)>>0&0xff) ^
		(uint64(x)>>1&lanes)*(uint64(y)>>8&0xff) ^
		(uint64(x)>>2&lanes)*(uint64(y)>>16&0xff) ^
		(uint64(x)>>3&lanes)*(uint64(y)>>24&0xff) ^
		(uint64(x)>>4&lanes)*(uint64(y)>>32&0xff) ^
		(uint64(x)>>5&lanes)*(uint64(y)>>40&0xff) ^
		(uint64(x)>>6&lanes)*(uint64(y)>>48&0xff) ^
		(uint64(x)>>7&lanes)*(uint64(y)>>56&0xff))
}

// set assigns entry (i, j), for i and j in 0..7.
func (x *m8) set(i, j int, value bool) {
	var v uint64
	if value {
		v = ^uint64(0)
	}
	*x ^= m8((uint64(1) << (8*i + j)) & (uint64(*x) ^ v))
}

// m128 is a 128×128 matrix over GF(2) stored as 16×16 blocks of m8.
type m128 [16][16]m8

func identity() m128 {
	var x m128
	for i := range x {
		x[i][i] = m8ID
	}
	return x
}

// mul stores the product x*y in out.  out must not alias x or y.
func mul(out, x, y *m128) {
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			a := m8Zero
			for k := 0; k < 16; k++ {
				a ^= x[i][k].mul(y[k][j])
			}
			out[i][j] = a
		}
	}
}

func mulm(x, y m128) m128 {
	var o m128
	mul(&o, &x, &y)
	return o
}

// set assigns entry (i, j), for i and j in 0..127.
func (x *m128) set(i, j int, value bool) {
	x[i>>3&15][j>>3&15].set(i&7, j&7, value)
}

// u128 is a 128-bit state vector for building transition matrices.
type u128 struct {
	lo, hi uint64
}

func (s u128) bit(i int) bool {
	if i < 64 {
		return s.lo>>i&1 != 0
	}
	return s.hi>>(i-64)&1 != 0
}

func basis(j int) u128 {
	if j < 64 {
		return u128{lo: 1 << j}
	}
	return u128{hi: 1 << (j - 64)}
}

// next applies the linear part of the candidate state transition with shift
// a and rotation b.
func next(s u128, a, b int) u128 {
	x := s.lo
	y := s.hi
	u := y ^ y>>a
	v := x ^ (y>>b | y<<(64-b))
	return u128{lo: u, hi: v}
}

// makeMat builds the matrix of the linear map f by applying it to every
// basis vector.
func makeMat(f func(u128) u128) m128 {
	var x m128
	for j := 0; j < 128; j++ {
		y := f(basis(j))
		for i := 0; i < 128; i++ {
			if y.bit(i) {
				x.set(i, j, true)
			}
		}
	}
	return x
}

// pow2exp128 returns x^(2¹²⁸) by repeated squaring.
func pow2exp128(x m128) m128 {
	for i := 0; i < 128; i++ {
		x = mulm(x, x)
	}
	return x
}

// pow returns x^n for n >= 1 by square and multiply.
func pow(x m128, n *big.Int) m128 {
	n = new(big.Int).Set(n)
	y := identity()
	one := big.NewInt(1)
	for n.Cmp(one) != 0 {
		if n.Bit(0) != 0 {
			y = mulm(x, y)
		}
		x = mulm(x, x)
		n.Rsh(n, 1)
	}
	return mulm(x, y)
}

// primeFactors is the full prime factorization of 2¹²⁸-1.
func primeFactors() []*big.Int {
	fs := []int64{3, 5, 17, 257, 65537, 641, 6700417, 274177}
	out := make([]*big.Int, 0, len(fs)+1)
	for _, f := range fs {
		out = append(out, big.NewInt(f))
	}
	last, _ := new(big.Int).SetString("67280421310721", 10)
	return append(out, last)
}

type config struct {
	AMin    int  `long:"amin" default:"1" description:"lowest shift amount to test"`
	AMax    int  `long:"amax" default:"63" description:"highest shift amount to test"`
	BMin    int  `long:"bmin" default:"1" description:"lowest rotation amount to test"`
	BMax    int  `long:"bmax" default:"63" description:"highest rotation amount to test"`
	Verbose bool `short:"v" long:"verbose" description:"log every candidate, not just the full-period ones"`
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
	if cfg.AMin < 1 || cfg.AMax > 63 || cfg.BMin < 1 || cfg.BMax > 63 ||
		cfg.AMin > cfg.AMax || cfg.BMin > cfg.BMax {
		fmt.Fprintln(os.Stderr, "shift and rotation ranges must lie within [1,63]")
		os.Exit(1)
	}

	backend := slog.NewBackend(os.Stderr)
	log = backend.Logger("PERD")
	log.SetLevel(slog.LevelInfo)
	if cfg.Verbose {
		log.SetLevel(slog.LevelDebug)
	}

	// Sanity check the factorization before trusting any result.
	order := new(big.Int).Lsh(big.NewInt(1), 128)
	order.Sub(order, big.NewInt(1)) // 2¹²⁸-1
	prod := big.NewInt(1)
	factors := primeFactors()
	for _, p := range factors {
		prod.Mul(prod, p)
	}
	if prod.Cmp(order) != 0 {
		log.Critical("prime factorization of 2^128-1 is inconsistent")
		os.Exit(1)
	}

	id := identity()
	nb := cfg.AMax - cfg.AMin + 1
	mb := cfg.BMax - cfg.BMin + 1
	full := bitset.NewBytes(nb * mb)
	var found int

	for a := cfg.AMin; a <= cfg.AMax; a++ {
		log.Debugf("testing shift a=%d", a)
		for b := cfg.BMin; b <= cfg.BMax; b++ {
			x := makeMat(func(s u128) u128 { return next(s, a, b) })
			if x != pow2exp128(x) {
				log.Debugf("a=%-2d b=%-2d order does not divide 2^128-1", a, b)
				continue
			}
			ok := true
			for _, p := range factors {
				exp := new(big.Int).Div(order, p)
				if pow(x, exp) == id {
					log.Debugf("a=%-2d b=%-2d degenerates at factor %v", a, b, p)
					ok = false
					break
				}
			}
			if ok {
				full.Set((a-cfg.AMin)*mb + (b - cfg.BMin))
				found++
				log.Infof("full period: a=%-2d b=%-2d", a, b)
			}
		}
	}

	log.Infof("%d of %d candidates have full period", found, nb*mb)
	for a := cfg.AMin; a <= cfg.AMax; a++ {
		for b := cfg.BMin; b <= cfg.BMax; b++ {
			if full.Get((a-cfg.AMin)*mb + (b - cfg.BMin)) {
				fmt.Printf("%d %d\n", a, b)
			}
		}
	}
}
