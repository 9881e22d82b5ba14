package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// Persisted-state keys. Each store serializes its full state under its own key;
// an absent key means first run.
const (
	KeyUser         = "wordforge-user"
	KeyCustomWords  = "wordforge-custom-words"
	KeyMistakes     = "wordforge-mistakes"
	KeySessions     = "wordforge-sessions"
	KeyGamification = "wordforge-gamification"
)

type (
	// Adapter is the durable backing of a store. Load returns ok=false when the
	// key has never been written.
	Adapter interface {
		Load(ctx context.Context, key string) (value []byte, ok bool, err error)
		Save(ctx context.Context, key string, value []byte) error
	}
)

func loadState(ctx context.Context, adapter Adapter, key string, dest any, log *slog.Logger) {
	data, ok, err := adapter.Load(ctx, key)
	if err != nil {
		log.ErrorContext(ctx, "failed to load persisted state, falling back to defaults", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.ErrorContext(ctx, "failed to decode persisted state, falling back to defaults", "key", key, "error", err)
	}
}

func saveState(ctx context.Context, adapter Adapter, key string, state any, log *slog.Logger) {
	data, err := json.Marshal(state)
	if err != nil {
		log.ErrorContext(ctx, "failed to encode state", "key", key, "error", err)
		return
	}
	if err := adapter.Save(ctx, key, data); err != nil {
		log.ErrorContext(ctx, "failed to persist state", "key", key, "error", err)
	}
}

func newID() string {
	return uuid.NewString()
}
