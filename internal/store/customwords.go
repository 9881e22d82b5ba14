package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type (
	// CustomWord is a user-authored word/translation entry.
	CustomWord struct {
		ID          string    `json:"id"`
		Word        string    `json:"word"`
		Translation string    `json:"translation"`
		Example     string    `json:"example,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// CustomWordInput carries the user-provided fields of a new entry. Callers
	// are responsible for rejecting empty word/translation before invocation.
	CustomWordInput struct {
		Word        string `json:"word"`
		Translation string `json:"translation"`
		Example     string `json:"example,omitempty"`
	}

	// CustomWordUpdate carries partial edits; nil fields are left as-is.
	CustomWordUpdate struct {
		Word        *string `json:"word,omitempty"`
		Translation *string `json:"translation,omitempty"`
		Example     *string `json:"example,omitempty"`
	}

	customWordsState struct {
		CustomWords []CustomWord `json:"custom_words"`
	}

	// CustomWordStore owns user-authored word entries, kept in insertion order.
	CustomWordStore struct {
		mu      sync.Mutex
		state   customWordsState
		adapter Adapter
		now     func() time.Time
		log     *slog.Logger
	}
)

func NewCustomWordStore(ctx context.Context, adapter Adapter, log *slog.Logger) *CustomWordStore {
	s := &CustomWordStore{
		adapter: adapter,
		now:     time.Now,
		log:     log,
	}
	loadState(ctx, adapter, KeyCustomWords, &s.state, log)
	return s
}

// AddCustomWord appends a new entry with a generated id and returns it.
func (s *CustomWordStore) AddCustomWord(ctx context.Context, input CustomWordInput) CustomWord {
	s.mu.Lock()
	defer s.mu.Unlock()

	word := CustomWord{
		ID:          newID(),
		Word:        input.Word,
		Translation: input.Translation,
		Example:     input.Example,
		CreatedAt:   s.now(),
	}
	s.state.CustomWords = append(s.state.CustomWords, word)
	s.persist(ctx)
	return word
}

// UpdateCustomWord merges the update into the entry matching id; no-op if absent.
func (s *CustomWordStore) UpdateCustomWord(ctx context.Context, id string, update CustomWordUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CustomWords {
		if s.state.CustomWords[i].ID != id {
			continue
		}
		if update.Word != nil {
			s.state.CustomWords[i].Word = *update.Word
		}
		if update.Translation != nil {
			s.state.CustomWords[i].Translation = *update.Translation
		}
		if update.Example != nil {
			s.state.CustomWords[i].Example = *update.Example
		}
		s.persist(ctx)
		return
	}
}

// DeleteCustomWord removes the entry matching id; no-op if absent.
func (s *CustomWordStore) DeleteCustomWord(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CustomWords {
		if s.state.CustomWords[i].ID == id {
			s.state.CustomWords = append(s.state.CustomWords[:i], s.state.CustomWords[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// SearchCustomWords returns all entries whose word or translation contains the
// query as a case-insensitive substring, in insertion order. An empty query
// matches everything.
func (s *CustomWordStore) SearchCustomWords(query string) []CustomWord {
	s.mu.Lock()
	defer s.mu.Unlock()

	lowered := strings.ToLower(query)
	res := make([]CustomWord, 0, len(s.state.CustomWords))
	for _, w := range s.state.CustomWords {
		if strings.Contains(strings.ToLower(w.Word), lowered) ||
			strings.Contains(strings.ToLower(w.Translation), lowered) {
			res = append(res, w)
		}
	}
	return res
}

// CustomWords returns all entries in insertion order.
func (s *CustomWordStore) CustomWords() []CustomWord {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]CustomWord, len(s.state.CustomWords))
	copy(res, s.state.CustomWords)
	return res
}

func (s *CustomWordStore) persist(ctx context.Context) {
	saveState(ctx, s.adapter, KeyCustomWords, s.state, s.log)
}
