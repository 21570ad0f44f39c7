package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedCache_SetGetDelete(t *testing.T) {
	c := NewUnifiedCache[int](time.Minute, "test", nil)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 42)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, c.Size())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	m := c.GetMetrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(2), m.Misses)
	assert.Equal(t, int64(1), m.Sets)
	assert.Equal(t, int64(1), m.Evictions)
}

func TestUnifiedCache_Expiry(t *testing.T) {
	c := NewUnifiedCache[string](20*time.Millisecond, "short", nil)
	c.Set("k", "v")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestUnifiedCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewUnifiedCache[bool](0, "forever", nil)
	c.Set("k", true)

	time.Sleep(10 * time.Millisecond)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.True(t, v)
}

func TestUnifiedCache_OnEvictedAndTouch(t *testing.T) {
	c := NewUnifiedCache[string](time.Minute, "evict", nil)

	evicted := make(chan string, 1)
	c.OnEvicted(func(key string, value string) {
		evicted <- key + "=" + value
	})

	assert.False(t, c.Touch("k"))
	c.Set("k", "v")
	assert.True(t, c.Touch("k"))

	c.Delete("k")
	select {
	case got := <-evicted:
		assert.Equal(t, "k=v", got)
	case <-time.After(time.Second):
		t.Fatal("eviction callback not called")
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "user:navbar-condensed", Key("user", "navbar-condensed"))
}
