package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wordforge-app/wordforge/internal/dal"
)

type (
	// Set bundles the five state containers owned by one user.
	Set struct {
		User         *UserStore
		CustomWords  *CustomWordStore
		Mistakes     *MistakeStore
		Sessions     *SessionStore
		Gamification *GamificationStore
	}

	// Registry hands out one Set per user scope, backed by the shared state
	// repository. A Set is built once and reused, which keeps a single writer
	// per domain within this instance.
	Registry struct {
		mu     sync.Mutex
		states dal.StateRepository
		sets   map[string]*Set
		log    *slog.Logger
	}

	scopedAdapter struct {
		states dal.StateRepository
		scope  string
	}
)

func NewRegistry(states dal.StateRepository, log *slog.Logger) *Registry {
	return &Registry{
		states: states,
		sets:   make(map[string]*Set),
		log:    log,
	}
}

// ForUser returns the store set for the scope, creating and loading it on
// first use. Creation also bootstraps the achievement catalog for a pristine
// gamification store.
func (r *Registry) ForUser(ctx context.Context, scope string) *Set {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.sets[scope]; ok {
		return set
	}

	adapter := &scopedAdapter{states: r.states, scope: scope}
	set := &Set{
		User:         NewUserStore(ctx, adapter, r.log),
		CustomWords:  NewCustomWordStore(ctx, adapter, r.log),
		Mistakes:     NewMistakeStore(ctx, adapter, r.log),
		Sessions:     NewSessionStore(ctx, adapter, r.log),
		Gamification: NewGamificationStore(ctx, adapter, r.log),
	}
	set.Gamification.InitializeGamification(ctx)

	r.sets[scope] = set
	return set
}

// PersistedScopes lists every scope with persisted state, merged with the
// scopes loaded in this process. A scope that has written nothing yet is only
// known locally, while scopes from earlier process lifetimes exist only in the
// backing, so neither source alone is complete.
func (r *Registry) PersistedScopes(ctx context.Context) ([]string, error) {
	persisted, err := r.states.ListScopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(persisted))
	res := make([]string, 0, len(persisted)+len(r.sets))
	for _, scope := range persisted {
		seen[scope] = true
		res = append(res, scope)
	}
	for scope := range r.sets {
		if !seen[scope] {
			res = append(res, scope)
		}
	}
	return res, nil
}

func (a *scopedAdapter) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := a.states.GetState(ctx, a.scope, key)
	if err != nil {
		if errors.Is(err, dal.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (a *scopedAdapter) Save(ctx context.Context, key string, value []byte) error {
	return a.states.PutState(ctx, a.scope, key, value)
}
