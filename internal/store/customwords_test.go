package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomWordStore_AddUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s := NewCustomWordStore(ctx, newMemAdapter(), testLogger())

	added := s.AddCustomWord(ctx, CustomWordInput{Word: "serendipity", Translation: "щасливий випадок"})
	require.NotEmpty(t, added.ID)
	require.False(t, added.CreatedAt.IsZero())

	newTranslation := "прозорливість"
	example := "A fortunate stroke of serendipity."
	s.UpdateCustomWord(ctx, added.ID, CustomWordUpdate{Translation: &newTranslation, Example: &example})

	words := s.CustomWords()
	require.Len(t, words, 1)
	assert.Equal(t, "serendipity", words[0].Word)
	assert.Equal(t, newTranslation, words[0].Translation)
	assert.Equal(t, example, words[0].Example)

	// updates against an absent id are silently ignored
	s.UpdateCustomWord(ctx, "missing", CustomWordUpdate{Translation: &newTranslation})
	assert.Len(t, s.CustomWords(), 1)

	s.DeleteCustomWord(ctx, "missing")
	assert.Len(t, s.CustomWords(), 1)

	s.DeleteCustomWord(ctx, added.ID)
	assert.Empty(t, s.CustomWords())
}

func TestCustomWordStore_Search(t *testing.T) {
	ctx := context.Background()
	s := NewCustomWordStore(ctx, newMemAdapter(), testLogger())
	s.AddCustomWord(ctx, CustomWordInput{Word: "serendipity", Translation: "щасливий випадок"})
	s.AddCustomWord(ctx, CustomWordInput{Word: "cat", Translation: "кіт"})
	s.AddCustomWord(ctx, CustomWordInput{Word: "observe", Translation: "спостерігати"})

	tests := []struct {
		name      string
		query     string
		wantWords []string
	}{
		{name: "substring of word", query: "ser", wantWords: []string{"serendipity", "observe"}},
		{name: "case insensitive", query: "SER", wantWords: []string{"serendipity", "observe"}},
		{name: "matches translation", query: "кіт", wantWords: []string{"cat"}},
		{name: "empty query matches all", query: "", wantWords: []string{"serendipity", "cat", "observe"}},
		{name: "no match", query: "zzz", wantWords: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := s.SearchCustomWords(tt.query)
			got := make([]string, 0, len(found))
			for _, w := range found {
				got = append(got, w.Word)
			}
			assert.Equal(t, tt.wantWords, got)
		})
	}
}

func TestCustomWordStore_InsertionOrderSurvivesReload(t *testing.T) {
	ctx := context.Background()
	adapter := newMemAdapter()

	s := NewCustomWordStore(ctx, adapter, testLogger())
	for _, w := range []string{"alpha", "beta", "gamma"} {
		s.AddCustomWord(ctx, CustomWordInput{Word: w, Translation: w})
	}

	reloaded := NewCustomWordStore(ctx, adapter, testLogger())
	words := reloaded.CustomWords()
	require.Len(t, words, 3)
	assert.Equal(t, "alpha", words[0].Word)
	assert.Equal(t, "beta", words[1].Word)
	assert.Equal(t, "gamma", words[2].Word)
}
