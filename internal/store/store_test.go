package store

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// memAdapter is an in-memory Adapter for tests, standing in for the durable
// backing.
type memAdapter struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemAdapter() *memAdapter {
	return &memAdapter{values: make(map[string][]byte)}
}

func (a *memAdapter) Load(_ context.Context, key string) ([]byte, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	value, ok := a.values[key]
	return value, ok, nil
}

func (a *memAdapter) Save(_ context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.values[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
