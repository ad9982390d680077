package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralCacheLoadStore(t *testing.T) {
	c, err := NewGeneralCache(1<<10, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Load("decomp:123m")
	assert.False(t, ok)

	c.Store("decomp:123m", int8(-1))
	c.Wait()
	v, ok := c.Load("decomp:123m")
	require.True(t, ok)
	assert.Equal(t, int8(-1), v)
}

func TestGeneralCacheWrongType(t *testing.T) {
	c, err := NewGeneralCache(1<<10, 0)
	require.NoError(t, err)
	defer c.Close()

	c.Set("k", "not a number")
	c.Wait()
	_, ok := c.Load("k")
	assert.False(t, ok)
}
