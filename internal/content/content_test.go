package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWords(t *testing.T) {
	words := RandomWords(10)
	require.Len(t, words, 10)

	seen := map[string]bool{}
	for _, w := range words {
		assert.False(t, seen[w.ID], "duplicate word %q", w.ID)
		seen[w.ID] = true
	}

	all := RandomWords(len(sampleWords) + 100)
	assert.Len(t, all, len(sampleWords))
}

func TestRandomVerbs(t *testing.T) {
	verbs := RandomVerbs(5)
	require.Len(t, verbs, 5)

	seen := map[string]bool{}
	for _, v := range verbs {
		assert.False(t, seen[v.ID], "duplicate verb %q", v.ID)
		seen[v.ID] = true
	}
}

func TestRandomWrongAnswers(t *testing.T) {
	pool := Words()
	correct := pool[0].Translation

	wrong := RandomWrongAnswers(correct, pool, 3)
	require.Len(t, wrong, 3)
	for _, w := range wrong {
		assert.NotEqual(t, correct, w)
	}
}

func TestRandomWrongAnswers_SmallPool(t *testing.T) {
	pool := []Word{
		{ID: "a", Word: "cat", Translation: "кіт"},
		{ID: "b", Word: "dog", Translation: "пес"},
	}
	wrong := RandomWrongAnswers("кіт", pool, 5)
	assert.Equal(t, []string{"пес"}, wrong)
}
