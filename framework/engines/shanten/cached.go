package shanten

import (
	"sync"
	"sync/atomic"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
)

// Store 向听结果缓存
type Store interface {
	Load(key string) (int8, bool)
	Store(key string, v int8)
}

// Cached 给任意 Calculator 加多级缓存
// 命中较慢的一级时回填之前的各级，未命中则计算后写入全部
type Cached struct {
	inner  Calculator
	tiers  []Store
	hits   atomic.Int64
	misses atomic.Int64
}

func NewCached(inner Calculator, tiers ...Store) *Cached {
	return &Cached{inner: inner, tiers: tiers}
}

func (c *Cached) Name() string { return c.inner.Name() }

func (c *Cached) Scale() Scale { return c.inner.Scale() }

func (c *Cached) CalculateShanten(h tile.Counts) int8 {
	key := CacheKey(c.inner.Name(), h)
	for k, t := range c.tiers {
		if v, ok := t.Load(key); ok {
			c.hits.Add(1)
			for _, upper := range c.tiers[:k] {
				upper.Store(key, v)
			}
			return v
		}
	}
	c.misses.Add(1)
	v := c.inner.CalculateShanten(h)
	for _, t := range c.tiers {
		t.Store(key, v)
	}
	return v
}

// Stats 命中与未命中次数
func (c *Cached) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// CacheKey 引擎名 + 规范记法
func CacheKey(engine string, h tile.Counts) string {
	return engine + ":" + h.String()
}

// MapStore 读写锁保护的 map，不淘汰
type MapStore struct {
	mu sync.RWMutex
	m  map[string]int8
}

func NewMapStore() *MapStore {
	return &MapStore{m: make(map[string]int8, 4096)}
}

func (s *MapStore) Load(key string) (int8, bool) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok
}

func (s *MapStore) Store(key string, v int8) {
	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
}

func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
