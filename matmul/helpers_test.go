// SPDX-License-Identifier: MIT
// Package matmul_test contains shared fixtures for the coordinator tests.

package matmul_test

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmul/matmul"
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

// tally is a goroutine-safe pool.Counter.
type tally struct {
	mu sync.Mutex
	m  map[string]int
}

func (c *tally) Inc(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[string]int)
	}
	c.m[key]++

	return nil
}

func (c *tally) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.m[key]
}

// workersUsed counts distinct "call.thread.worker.<i>" keys.
func (c *tally) workersUsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.m {
		if strings.HasPrefix(k, "call.thread.worker.") {
			n++
		}
	}

	return n
}

// trace records observed states in order.
type trace struct {
	mu     sync.Mutex
	states []matmul.State
}

func (tr *trace) observe(s matmul.State) {
	tr.mu.Lock()
	tr.states = append(tr.states, s)
	tr.mu.Unlock()
}

func (tr *trace) seen() []matmul.State {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	return append([]matmul.State(nil), tr.states...)
}
