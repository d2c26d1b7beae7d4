// SPDX-License-Identifier: MIT

package metrics

import (
	"sort"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// AtomicMap holds a fixed set of counters chosen at construction. The map
// itself is never written after NewAtomicMap, so lookups take no lock.
type AtomicMap struct {
	data map[string]*atomic.Int64
}

// NewAtomicMap registers every name with a zero counter. Duplicates collapse.
func NewAtomicMap(names ...string) *AtomicMap {
	m := &AtomicMap{data: make(map[string]*atomic.Int64, len(names))}
	for _, n := range names {
		if _, ok := m.data[n]; !ok {
			m.data[n] = new(atomic.Int64)
		}
	}

	return m
}

func (m *AtomicMap) Inc(key string) error { return m.add(key, 1) }
func (m *AtomicMap) Dec(key string) error { return m.add(key, -1) }

func (m *AtomicMap) add(key string, d int64) error {
	c, ok := m.data[key]
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	c.Add(d)

	return nil
}

// Keys returns the registered names, sorted.
func (m *AtomicMap) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Snapshot loads every counter; each value is atomic, the set is not.
func (m *AtomicMap) Snapshot() (map[string]int64, error) {
	out := make(map[string]int64, len(m.data))
	for k, c := range m.data {
		out[k] = c.Load()
	}

	return out, nil
}
