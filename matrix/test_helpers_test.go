// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (sequential and seeded random matrices).
//   • Keep integer data small so products stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmul/matrix"
)

// seq returns a rows×cols matrix holding 1..rows*cols in row-major order.
func seq(t testing.TB, rows, cols int) *matrix.Matrix[int] {
	t.Helper()
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = i + 1
	}
	m, err := matrix.New(data, rows, cols)
	if err != nil {
		t.Fatalf("seq(%d,%d): %v", rows, cols, err)
	}

	return m
}

// randInts returns a rows×cols matrix with entries in [-9, 9] from a fixed seed.
func randInts(t testing.TB, rows, cols int, seed int64) *matrix.Matrix[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = rng.Int63n(19) - 9
	}
	m, err := matrix.New(data, rows, cols)
	if err != nil {
		t.Fatalf("randInts(%d,%d): %v", rows, cols, err)
	}

	return m
}

// randFloats returns a rows×cols float64 matrix in [0,1) from a fixed seed.
func randFloats(t testing.TB, rows, cols int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}

	return matrix.MustNew(data, rows, cols)
}
