package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// GeneralCache 本地缓存，支持 TTL
// 写入是异步的，需要立即可见时调用 Wait
type GeneralCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewGeneralCache 创建本地缓存
// maxCost: 最大成本，每个条目记 1
// ttl: 默认过期时间，0 表示不过期
func NewGeneralCache(maxCost int64, ttl time.Duration) (*GeneralCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // 官方建议为条目数的 10 倍
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}

	return &GeneralCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Set 设置缓存，使用默认 TTL
func (c *GeneralCache) Set(key string, value interface{}) bool {
	return c.cache.SetWithTTL(key, value, 1, c.ttl)
}

// Load 读取向听结果
func (c *GeneralCache) Load(key string) (int8, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return 0, false
	}
	v, ok := value.(int8)
	return v, ok
}

// Store 写入向听结果
func (c *GeneralCache) Store(key string, v int8) {
	c.Set(key, v)
}

// Wait 等待缓冲中的写入生效
func (c *GeneralCache) Wait() {
	c.cache.Wait()
}

// Close 关闭缓存
func (c *GeneralCache) Close() {
	c.cache.Close()
}
