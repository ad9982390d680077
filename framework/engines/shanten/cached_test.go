package shanten_test

import (
	"sync/atomic"
	"testing"

	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/tile"
	"github.com/stretchr/testify/assert"
)

type countingCalc struct {
	shanten.Calculator
	calls atomic.Int64
}

func (c *countingCalc) CalculateShanten(h tile.Counts) int8 {
	c.calls.Add(1)
	return c.Calculator.CalculateShanten(h)
}

func TestCachedComputesOnce(t *testing.T) {
	inner := &countingCalc{Calculator: shanten.NewDecompFixed()}
	store := shanten.NewMapStore()
	c := shanten.NewCached(inner, store)

	h := tile.MustParse("123m456p789s1122z")
	assert.Equal(t, int8(0), c.CalculateShanten(h))
	assert.Equal(t, int8(0), c.CalculateShanten(h))
	assert.Equal(t, int64(1), inner.calls.Load())

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, shanten.NameDecompFixed, c.Name())
	assert.Equal(t, shanten.Scale8, c.Scale())
}

func TestCachedBackfillsUpperTier(t *testing.T) {
	h := tile.MustParse("1111z")
	upper, lower := shanten.NewMapStore(), shanten.NewMapStore()
	lower.Store(shanten.CacheKey(shanten.NameMeldSearch, h), 1)

	inner := &countingCalc{Calculator: shanten.NewMeldSearch()}
	c := shanten.NewCached(inner, upper, lower)
	assert.Equal(t, int8(1), c.CalculateShanten(h))
	assert.Equal(t, int64(0), inner.calls.Load())

	v, ok := upper.Load(shanten.CacheKey(shanten.NameMeldSearch, h))
	assert.True(t, ok)
	assert.Equal(t, int8(1), v)
}

func TestCacheKeySeparatesEngines(t *testing.T) {
	h := tile.MustParse("1111z")
	store := shanten.NewMapStore()
	exact := shanten.NewCached(shanten.NewDecompFixed(), store)
	plain := shanten.NewCached(shanten.NewDecompPruned(), store)
	assert.Equal(t, int8(1), exact.CalculateShanten(h))
	assert.Equal(t, int8(0), plain.CalculateShanten(h))
	assert.Equal(t, 2, store.Len())
}

func TestCachedWithoutTiers(t *testing.T) {
	c := shanten.NewCached(shanten.NewKobayashi())
	assert.Equal(t, int8(-1), c.CalculateShanten(tile.MustParse("123m456p789s11222z")))
	_, misses := c.Stats()
	assert.Equal(t, int64(1), misses)
}
