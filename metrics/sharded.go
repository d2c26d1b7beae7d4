// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/cespare/xxhash/v2"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// ShardedMap spreads keys over independently locked shards so updates to
// different keys rarely contend. Keys are assigned to shards by xxhash.
type ShardedMap struct {
	m cmap.ConcurrentMap[string, int64]
}

// NewShardedMap returns an empty map with cmap.SHARD_COUNT shards.
func NewShardedMap() *ShardedMap {
	return &ShardedMap{m: cmap.NewWithCustomShardingFunction[string, int64](shardKey)}
}

func shardKey(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}

func (s *ShardedMap) Inc(key string) error { s.add(key, 1); return nil }
func (s *ShardedMap) Dec(key string) error { s.add(key, -1); return nil }

// add updates key under its shard lock.
func (s *ShardedMap) add(key string, d int64) {
	s.m.Upsert(key, d, func(exist bool, old, delta int64) int64 {
		if !exist {
			return delta
		}

		return old + delta
	})
}

// Get returns the value of key and whether it has ever been touched.
func (s *ShardedMap) Get(key string) (int64, bool) {
	return s.m.Get(key)
}

// Snapshot copies shard by shard; it is consistent per key, not across keys.
func (s *ShardedMap) Snapshot() (map[string]int64, error) {
	return s.m.Items(), nil
}
