// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrUnknownKey is returned by AtomicMap for keys it was not built with.
var ErrUnknownKey = errors.New("metrics: unknown key")

// Store is a set of named int64 counters safe for concurrent use.
type Store interface {
	Inc(key string) error
	Dec(key string) error
	// Snapshot returns a copy; later updates do not affect it.
	Snapshot() (map[string]int64, error)
}

var (
	_ Store = (*LockMap)(nil)
	_ Store = (*ShardedMap)(nil)
	_ Store = (*AtomicMap)(nil)
)

// LockMap is a map guarded by a single mutex. The zero value is ready to use.
type LockMap struct {
	mu   sync.Mutex
	data map[string]int64
}

// NewLockMap returns an empty LockMap.
func NewLockMap() *LockMap { return &LockMap{} }

func (m *LockMap) Inc(key string) error { m.add(key, 1); return nil }
func (m *LockMap) Dec(key string) error { m.add(key, -1); return nil }

func (m *LockMap) add(key string, d int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]int64)
	}
	m.data[key] += d
}

func (m *LockMap) Snapshot() (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}

	return out, nil
}

// Render writes a snapshot of s as "key: value" lines sorted by key.
func Render(w io.Writer, s Store) error {
	snap, err := s.Snapshot()
	if err != nil {
		return errors.Wrap(err, "metrics: snapshot")
	}
	for _, k := range SortedKeys(snap) {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, snap[k]); err != nil {
			return errors.Wrap(err, "metrics: render")
		}
	}

	return nil
}

// String is Render into a string; errors render as "<error: ...>".
func String(s Store) string {
	var b strings.Builder
	if err := Render(&b, s); err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}

	return b.String()
}

// SortedKeys returns the keys of snap in lexical order.
func SortedKeys(snap map[string]int64) []string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
