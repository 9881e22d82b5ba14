// Package content holds the static learning material and the random-sampling
// helpers the quiz controllers draw from.
package content

import (
	"math/rand/v2"
)

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type (
	Difficulty string

	Word struct {
		ID           string     `json:"id"`
		Word         string     `json:"word"`
		Translation  string     `json:"translation"`
		Difficulty   Difficulty `json:"difficulty"`
		PartOfSpeech string     `json:"part_of_speech"`
		Example      string     `json:"example,omitempty"`
		Category     string     `json:"category,omitempty"`
	}

	Verb struct {
		ID          string     `json:"id"`
		Base        string     `json:"base"`
		Past        string     `json:"past"`
		Participle  string     `json:"participle"`
		Translation string     `json:"translation"`
		Difficulty  Difficulty `json:"difficulty"`
		Examples    []string   `json:"examples,omitempty"`
	}
)

// RandomWords returns up to n sample words in random order. Uniqueness within
// the result follows from sampling without replacement.
func RandomWords(n int) []Word {
	shuffled := make([]Word, len(sampleWords))
	copy(shuffled, sampleWords)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// RandomVerbs returns up to n sample irregular verbs in random order.
func RandomVerbs(n int) []Verb {
	shuffled := make([]Verb, len(sampleVerbs))
	copy(shuffled, sampleVerbs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// RandomWrongAnswers picks up to n distractor translations from the pool,
// excluding the correct one.
func RandomWrongAnswers(correct string, pool []Word, n int) []string {
	candidates := make([]string, 0, len(pool))
	for _, w := range pool {
		if w.Translation != correct {
			candidates = append(candidates, w.Translation)
		}
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// Words returns the full static word list.
func Words() []Word {
	res := make([]Word, len(sampleWords))
	copy(res, sampleWords)
	return res
}

// Verbs returns the full static verb list.
func Verbs() []Verb {
	res := make([]Verb, len(sampleVerbs))
	copy(res, sampleVerbs)
	return res
}
