package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("billing:shop-a:summary", 42, time.Minute)

	got, ok := c.Get("billing:shop-a:summary")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	_, ok = c.Get("billing:shop-b:summary")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("key", "value", time.Minute)
	c.Delete("key")

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheDeletePrefix(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("billing:shop-a:jan", 1, time.Minute)
	c.Set("billing:shop-a:feb", 2, time.Minute)
	c.Set("billing:shop-b:jan", 3, time.Minute)

	c.DeletePrefix("billing:shop-a:")

	_, ok := c.Get("billing:shop-a:jan")
	assert.False(t, ok)
	_, ok = c.Get("billing:shop-a:feb")
	assert.False(t, ok)

	got, ok := c.Get("billing:shop-b:jan")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}
