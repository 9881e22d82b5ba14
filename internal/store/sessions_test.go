package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_StartAndEnd(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, newMemAdapter(), testLogger())

	started := s.StartSession(ctx, ModeWords)
	require.NotEmpty(t, started.ID)
	assert.Nil(t, started.EndTime)

	current, ok := s.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, started.ID, current.ID)

	completed, ok := s.EndSession(ctx, 7, 10, 70, []string{"serendipity", "ubiquitous"})
	require.True(t, ok)
	assert.Equal(t, started.ID, completed.ID)
	require.NotNil(t, completed.EndTime)
	assert.InDelta(t, 70.0, completed.Accuracy, 1e-9)
	assert.Equal(t, 70, completed.XPEarned)

	_, ok = s.CurrentSession()
	assert.False(t, ok)

	recent := s.RecentSessions(0)
	require.Len(t, recent, 1)
	assert.Equal(t, started.ID, recent[0].ID)
}

func TestSessionStore_EndSession_Accuracy(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    float64
	}{
		{name: "all correct", correct: 10, total: 10, want: 100},
		{name: "none correct", correct: 0, total: 10, want: 0},
		{name: "partial", correct: 3, total: 4, want: 75},
		{name: "zero questions", correct: 0, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewSessionStore(ctx, newMemAdapter(), testLogger())
			s.StartSession(ctx, ModeVerbs)

			completed, ok := s.EndSession(ctx, tt.correct, tt.total, 0, nil)
			require.True(t, ok)
			assert.InDelta(t, tt.want, completed.Accuracy, 1e-9)
		})
	}
}

func TestSessionStore_EndSession_WithoutOpenSession(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, newMemAdapter(), testLogger())

	_, ok := s.EndSession(ctx, 5, 10, 50, nil)
	assert.False(t, ok)
	assert.Empty(t, s.RecentSessions(0))
}

func TestSessionStore_StartSession_DiscardsOpenSession(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, newMemAdapter(), testLogger())

	first := s.StartSession(ctx, ModeWords)
	second := s.StartSession(ctx, ModeVerbs)
	require.NotEqual(t, first.ID, second.ID)

	// the discarded session is not archived
	_, ok := s.EndSession(ctx, 1, 1, 10, nil)
	require.True(t, ok)
	sessions := s.RecentSessions(0)
	require.Len(t, sessions, 1)
	assert.Equal(t, second.ID, sessions[0].ID)
}

func TestSessionStore_RecentSessions_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, newMemAdapter(), testLogger())

	var ids []string
	for range 12 {
		started := s.StartSession(ctx, ModeWords)
		ids = append(ids, started.ID)
		_, ok := s.EndSession(ctx, 1, 1, 10, nil)
		require.True(t, ok)
	}

	recent := s.RecentSessions(0)
	require.Len(t, recent, 10)
	assert.Equal(t, ids[len(ids)-1], recent[0].ID)

	all := s.RecentSessions(100)
	assert.Len(t, all, 12)
}

func TestSessionStore_SessionsByMode(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, newMemAdapter(), testLogger())

	for _, mode := range []Mode{ModeWords, ModeVerbs, ModeWords, ModeCustom} {
		s.StartSession(ctx, mode)
		_, ok := s.EndSession(ctx, 1, 1, 10, nil)
		require.True(t, ok)
	}

	words := s.SessionsByMode(ModeWords)
	require.Len(t, words, 2)
	for _, session := range words {
		assert.Equal(t, ModeWords, session.Mode)
	}
	assert.Len(t, s.SessionsByMode(ModeCustom), 1)
}

func TestSessionStore_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	adapter := newMemAdapter()

	s := NewSessionStore(ctx, adapter, testLogger())
	s.StartSession(ctx, ModeWords)
	_, ok := s.EndSession(ctx, 8, 10, 80, []string{"cat"})
	require.True(t, ok)

	reloaded := NewSessionStore(ctx, adapter, testLogger())
	sessions := reloaded.RecentSessions(0)
	require.Len(t, sessions, 1)
	assert.InDelta(t, 80.0, sessions[0].Accuracy, 1e-9)
	assert.Equal(t, []string{"cat"}, sessions[0].WordsLearned)
}
