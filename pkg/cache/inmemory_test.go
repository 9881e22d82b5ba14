package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemory(t *testing.T) {
	c := NewInMemory(context.Background())

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", "value", time.Minute)
	v, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	c.Set("key", "replaced", time.Minute)
	v, _ = c.Get("key")
	assert.Equal(t, "replaced", v)
}

func TestInMemory_Expiry(t *testing.T) {
	c := NewInMemory(context.Background())

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestInMemory_CancelStopsJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewInMemory(ctx)

	c.Set("key", "value", time.Minute)
	cancel()

	// the cache stays usable after the janitor exits
	v, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}
