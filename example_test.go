// Copyright (c) 2025 The drift developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drift_test

import (
	"fmt"

	"github.com/driftrand/drift"
)

// This example demonstrates deterministic sampling from a fixed seed.
func ExampleFromUint64() {
	rng := drift.FromUint64(1)
	fmt.Println(rng.BetweenInt32(1, 6))
	fmt.Println(rng.BetweenInt32(1, 6))
	fmt.Println(rng.BetweenInt32(1, 6))

	// Output:
	// 3
	// 5
	// 5
}

// This example demonstrates deriving an independent generator for a worker
// while the parent generator continues to be used.
func ExamplePRNG_Split() {
	parent := drift.FromUint64(1)
	worker := parent.Split()

	a := parent.Uint64()
	b := worker.Uint64()
	fmt.Println(a != b)

	// Output:
	// true
}
