package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

type Item struct {
	Value     string
	ExpiresAt time.Time
}

// Cache is a small in-memory TTL cache. It lives for one process run;
// nothing is ever persisted.
type Cache struct {
	mu    sync.Mutex
	items map[string]Item
}

func New() *Cache {
	return &Cache{
		items: make(map[string]Item),
	}
}

func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Get returns the cached value. Expired entries are dropped on read; a
// short-lived process needs no background sweeper.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		return "", false
	}
	if time.Now().After(item.ExpiresAt) {
		delete(c.items, key)
		return "", false
	}
	return item.Value, true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Key hashes the parts into a stable cache key.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
