package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a small wrapper around an in-process TTL cache. Keys are
// namespaced by the caller (e.g. "billing:<barbershop_id>") so prefix
// invalidation can drop everything a tenant owns.
type Cache struct {
	store *gocache.Cache
}

func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// SetForever stores a value the janitor never evicts. Callers use it for
// last-known-good snapshots that must outlive the TTL of the live entry.
func (c *Cache) SetForever(key string, value interface{}) {
	c.store.Set(key, value, gocache.NoExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// DeletePrefix drops every key that starts with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}
