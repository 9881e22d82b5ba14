package quiz

import (
	"context"
	"sync"

	"github.com/wordforge-app/wordforge/internal/store"
)

// Manager tracks at most one active run of each kind per user. Starting a new
// run replaces the previous one, matching the session store which keeps a
// single open session.
type Manager struct {
	mu       sync.Mutex
	registry *store.Registry
	words    map[string]*WordsRun
	verbs    map[string]*VerbsRun
}

func NewManager(registry *store.Registry) *Manager {
	return &Manager{
		registry: registry,
		words:    make(map[string]*WordsRun),
		verbs:    make(map[string]*VerbsRun),
	}
}

// StartWords opens a fresh words run for the user.
func (m *Manager) StartWords(ctx context.Context, userID string) *WordsRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	run := NewWordsRun(ctx, m.registry.ForUser(ctx, userID))
	m.words[userID] = run
	return run
}

// Words returns the user's active words run, if any.
func (m *Manager) Words(userID string) (*WordsRun, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, ok := m.words[userID]
	return run, ok
}

// StartVerbs opens a fresh verbs run for the user.
func (m *Manager) StartVerbs(ctx context.Context, userID string) *VerbsRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	run := NewVerbsRun(ctx, m.registry.ForUser(ctx, userID))
	m.verbs[userID] = run
	return run
}

// Verbs returns the user's active verbs run, if any.
func (m *Manager) Verbs(userID string) (*VerbsRun, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, ok := m.verbs[userID]
	return run, ok
}
