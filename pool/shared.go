// SPDX-License-Identifier: MIT

package pool

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/lvmul/vector"
)

// closer is the type-erased view of a *Pool[T] kept in the registry.
type closer interface{ Close() }

var shared = struct {
	mu    sync.Mutex
	pools map[reflect.Type]closer
}{pools: make(map[reflect.Type]closer)}

// Shared returns the process-wide pool for element type T, creating it on
// first use with DefaultPolicy.Max() workers and default options. Every call
// for the same T returns the same pool until CloseShared.
func Shared[T vector.Numeric]() *Pool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem() // equivalent to reflect.TypeFor[T]() (Go 1.22+)

	shared.mu.Lock()
	defer shared.mu.Unlock()
	if c, ok := shared.pools[key]; ok {
		return c.(*Pool[T])
	}
	p, err := New[T](DefaultPolicy.Max())
	if err != nil {
		// DefaultPolicy.Max() is a positive constant.
		panic(err)
	}
	shared.pools[key] = p

	return p
}

// CloseShared closes every shared pool and forgets it; the next Shared call
// starts a fresh one.
func CloseShared() {
	shared.mu.Lock()
	pools := shared.pools
	shared.pools = make(map[reflect.Type]closer)
	shared.mu.Unlock()

	for _, c := range pools {
		c.Close()
	}
}
