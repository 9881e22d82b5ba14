package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	MistakeWord MistakeType = "word"
	MistakeVerb MistakeType = "verb"
)

type (
	MistakeType string

	// Mistake is one recorded incorrect sub-answer, kept for later review and
	// retry. A verb question may produce up to two of them.
	Mistake struct {
		ID            string      `json:"id"`
		Type          MistakeType `json:"type"`
		QuestionID    string      `json:"question_id"`
		Question      string      `json:"question"`
		UserAnswer    string      `json:"user_answer"`
		CorrectAnswer string      `json:"correct_answer"`
		Timestamp     time.Time   `json:"timestamp"`
		RetryCount    int         `json:"retry_count"`
	}

	MistakeInput struct {
		Type          MistakeType `json:"type"`
		QuestionID    string      `json:"question_id"`
		Question      string      `json:"question"`
		UserAnswer    string      `json:"user_answer"`
		CorrectAnswer string      `json:"correct_answer"`
	}

	mistakesState struct {
		Mistakes []Mistake `json:"mistakes"`
	}

	// MistakeStore owns the log of incorrect quiz answers, in insertion order.
	MistakeStore struct {
		mu      sync.Mutex
		state   mistakesState
		adapter Adapter
		now     func() time.Time
		log     *slog.Logger
	}
)

func NewMistakeStore(ctx context.Context, adapter Adapter, log *slog.Logger) *MistakeStore {
	s := &MistakeStore{
		adapter: adapter,
		now:     time.Now,
		log:     log,
	}
	loadState(ctx, adapter, KeyMistakes, &s.state, log)
	return s
}

// AddMistake appends a new record with a generated id, current timestamp and a
// zero retry count.
func (s *MistakeStore) AddMistake(ctx context.Context, input MistakeInput) Mistake {
	s.mu.Lock()
	defer s.mu.Unlock()

	mistake := Mistake{
		ID:            newID(),
		Type:          input.Type,
		QuestionID:    input.QuestionID,
		Question:      input.Question,
		UserAnswer:    input.UserAnswer,
		CorrectAnswer: input.CorrectAnswer,
		Timestamp:     s.now(),
		RetryCount:    0,
	}
	s.state.Mistakes = append(s.state.Mistakes, mistake)
	s.persist(ctx)
	return mistake
}

// IncrementRetry bumps the retry count for the matching record; no-op if absent.
func (s *MistakeStore) IncrementRetry(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Mistakes {
		if s.state.Mistakes[i].ID == id {
			s.state.Mistakes[i].RetryCount++
			s.persist(ctx)
			return
		}
	}
}

// RemoveMistake removes the matching record; no-op if absent.
func (s *MistakeStore) RemoveMistake(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Mistakes {
		if s.state.Mistakes[i].ID == id {
			s.state.Mistakes = append(s.state.Mistakes[:i], s.state.Mistakes[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// ClearAllMistakes removes every record.
func (s *MistakeStore) ClearAllMistakes(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Mistakes = nil
	s.persist(ctx)
}

// MistakesByType filters by type, preserving insertion order.
func (s *MistakeStore) MistakesByType(t MistakeType) []Mistake {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]Mistake, 0, len(s.state.Mistakes))
	for _, m := range s.state.Mistakes {
		if m.Type == t {
			res = append(res, m)
		}
	}
	return res
}

// Mistakes returns all records in insertion order.
func (s *MistakeStore) Mistakes() []Mistake {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]Mistake, len(s.state.Mistakes))
	copy(res, s.state.Mistakes)
	return res
}

func (s *MistakeStore) persist(ctx context.Context) {
	saveState(ctx, s.adapter, KeyMistakes, s.state, s.log)
}
