package cache

import (
	"context"
	"sync"
	"time"
)

const janitorInterval = time.Minute

type entry struct {
	value     string
	expiresAt time.Time
}

type InMemory struct {
	storage map[string]entry

	mx   sync.RWMutex
	once sync.Once

	janitorCtx context.Context //nolint:containedctx // bounds the janitor goroutine to the owner's lifetime
}

func NewInMemory(ctx context.Context) *InMemory {
	return &InMemory{
		storage:    make(map[string]entry, 100),
		janitorCtx: ctx,
	}
}

func (c *InMemory) Get(key string) (string, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	e, ok := c.storage[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (c *InMemory) Set(key, value string, ttl time.Duration) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.storage[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	c.once.Do(func() {
		go c.janitor(c.janitorCtx)
	})
}

func (c *InMemory) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.mx.Lock()
			for key, e := range c.storage {
				if now.After(e.expiresAt) {
					delete(c.storage, key)
				}
			}
			c.mx.Unlock()
		}
	}
}
