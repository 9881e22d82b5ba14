package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ModeWords  Mode = "words"
	ModeVerbs  Mode = "verbs"
	ModeCustom Mode = "custom"

	defaultRecentSessionsLimit = 10
)

type (
	Mode string

	// Session is one bounded quiz run. An open session has no EndTime; the
	// completed log is kept most-recent-first.
	Session struct {
		ID             string     `json:"id"`
		Mode           Mode       `json:"mode"`
		StartTime      time.Time  `json:"start_time"`
		EndTime        *time.Time `json:"end_time,omitempty"`
		Accuracy       float64    `json:"accuracy"`
		TotalQuestions int        `json:"total_questions"`
		CorrectAnswers int        `json:"correct_answers"`
		XPEarned       int        `json:"xp_earned"`
		WordsLearned   []string   `json:"words_learned"`
	}

	sessionsState struct {
		Sessions []Session `json:"sessions"`
		Current  *Session  `json:"current_session"`
	}

	// SessionStore owns the completed-session log plus at most one open session.
	SessionStore struct {
		mu      sync.Mutex
		state   sessionsState
		adapter Adapter
		now     func() time.Time
		log     *slog.Logger
	}
)

func NewSessionStore(ctx context.Context, adapter Adapter, log *slog.Logger) *SessionStore {
	s := &SessionStore{
		adapter: adapter,
		now:     time.Now,
		log:     log,
	}
	loadState(ctx, adapter, KeySessions, &s.state, log)
	return s
}

// StartSession opens a new session, silently discarding any previously open one.
func (s *SessionStore) StartSession(ctx context.Context, mode Mode) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := Session{
		ID:           newID(),
		Mode:         mode,
		StartTime:    s.now(),
		WordsLearned: []string{},
	}
	s.state.Current = &session
	s.persist(ctx)
	return session
}

// EndSession finalizes the open session, prepends it to the log and clears the
// open slot. It is a no-op when no session is open.
func (s *SessionStore) EndSession(ctx context.Context, correctAnswers, totalQuestions, xpEarned int, wordsLearned []string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return Session{}, false
	}

	accuracy := 0.0
	if totalQuestions > 0 {
		accuracy = float64(correctAnswers) / float64(totalQuestions) * 100
	}

	completed := *s.state.Current
	endTime := s.now()
	completed.EndTime = &endTime
	completed.CorrectAnswers = correctAnswers
	completed.TotalQuestions = totalQuestions
	completed.Accuracy = accuracy
	completed.XPEarned = xpEarned
	completed.WordsLearned = wordsLearned

	s.state.Sessions = append([]Session{completed}, s.state.Sessions...)
	s.state.Current = nil
	s.persist(ctx)
	return completed, true
}

// CurrentSession returns the open session, if any.
func (s *SessionStore) CurrentSession() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return Session{}, false
	}
	return *s.state.Current, true
}

// RecentSessions returns the first limit entries of the most-recent-first log.
// A non-positive limit falls back to the default of 10.
func (s *SessionStore) RecentSessions(limit int) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = defaultRecentSessionsLimit
	}
	if limit > len(s.state.Sessions) {
		limit = len(s.state.Sessions)
	}
	res := make([]Session, limit)
	copy(res, s.state.Sessions[:limit])
	return res
}

// SessionsByMode filters the log by mode, preserving its order.
func (s *SessionStore) SessionsByMode(mode Mode) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]Session, 0, len(s.state.Sessions))
	for _, session := range s.state.Sessions {
		if session.Mode == mode {
			res = append(res, session)
		}
	}
	return res
}

func (s *SessionStore) persist(ctx context.Context) {
	saveState(ctx, s.adapter, KeySessions, s.state, s.log)
}
