// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Command quadgen builds a large random quad rope and exercises the
// bulk operations against it, logging timings. It exists as a quick
// sanity driver during development, the quadrope analogue of bart's
// cmd/main.go traffic simulator.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/quadrope/quadrope"
	"github.com/quadrope/quadrope/numeric"
)

func main() {
	log.SetFlags(log.Lmicroseconds)
	prng := rand.New(rand.NewPCG(42, 42))

	const n = 1024

	ts := time.Now()
	r := quadrope.Init(n, n, func(i, j int) float64 {
		return prng.Float64()
	})
	log.Printf("Init %dx%d: %v, rows=%d cols=%d depth=%d",
		n, n, time.Since(ts), quadrope.Rows(r), quadrope.Cols(r), quadrope.Depth(r))

	ts = time.Now()
	doubled := quadrope.Map(func(v float64) float64 { return v * 2 }, r)
	log.Printf("Map: %v", time.Since(ts))

	ts = time.Now()
	total := quadrope.Reduce(func(a, b float64) float64 { return a + b }, 0, doubled)
	log.Printf("Reduce: %v, total=%g", time.Since(ts), total)

	ts = time.Now()
	zeroBlock := quadrope.Create(n, n, 0.0)
	withZeroBlock, err := quadrope.Hcat(zeroBlock, r)
	if err != nil {
		log.Fatalf("Hcat: %v", err)
	}
	product := numeric.Prod(withZeroBlock)
	log.Printf("Prod with a Sparse-zero left operand: %v, product=%g", time.Since(ts), product)

	ts = time.Now()
	running := quadrope.Scan(
		func(a, b float64) float64 { return a + b },
		func(a, b float64) float64 { return a - b },
		func(int) float64 { return 0 },
		r,
	)
	log.Printf("Scan: %v", time.Since(ts))

	ts = time.Now()
	transposed := quadrope.Transpose(running)
	log.Printf("Transpose: %v", time.Since(ts))

	ts = time.Now()
	flat := quadrope.Reallocate(transposed)
	log.Printf("Reallocate: %v", time.Since(ts))

	ts = time.Now()
	compressed := quadrope.Compress(quadrope.Create(n, n, 1.0))
	log.Printf("Compress of a uniform rope: %v, sparse=%v", time.Since(ts), quadrope.IsSparse(compressed))

	ts = time.Now()
	identity := numeric.Identity(n)
	sum := numeric.Sum(identity)
	log.Printf("Identity trace check: %v, sum=%g (want %d)", time.Since(ts), sum, n)

	_ = flat
}
