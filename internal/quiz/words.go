// Package quiz implements the word and irregular-verb quiz runs on top of the
// user stores. A run holds the ephemeral per-session state (current question,
// score, combo) while every scoring outcome is written through to the stores.
package quiz

import (
	"context"
	"math/rand/v2"

	"github.com/wordforge-app/wordforge/internal/content"
	"github.com/wordforge-app/wordforge/internal/store"
)

const (
	questionsPerSession = 10

	wordXPPerCorrect = 10
	comboBonusXP     = 5
)

type (
	// WordQuestion is one multiple-choice translation question.
	WordQuestion struct {
		ID            string       `json:"id"`
		Word          content.Word `json:"word"`
		Options       []string     `json:"options"`
		CorrectAnswer string       `json:"-"`
	}

	// WordAnswer is the outcome of answering the current word question.
	WordAnswer struct {
		Correct       bool   `json:"correct"`
		CorrectAnswer string `json:"correct_answer"`
		XPEarned      int    `json:"xp_earned"`
		Combo         int    `json:"combo"`
	}

	// WordsRun is one words-quiz session in progress.
	WordsRun struct {
		set       *store.Set
		questions []WordQuestion
		index     int
		score     int
		combo     int
		answered  bool
		finished  bool
	}
)

// NewWordsRun builds a question set from the static content and opens a
// session in the session store.
func NewWordsRun(ctx context.Context, set *store.Set) *WordsRun {
	words := content.RandomWords(questionsPerSession)
	pool := content.Words()

	questions := make([]WordQuestion, 0, len(words))
	for _, w := range words {
		options := content.RandomWrongAnswers(w.Translation, pool, 3)
		options = append(options, w.Translation)
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		questions = append(questions, WordQuestion{
			ID:            w.ID,
			Word:          w,
			Options:       options,
			CorrectAnswer: w.Translation,
		})
	}

	set.Sessions.StartSession(ctx, store.ModeWords)
	return &WordsRun{set: set, questions: questions}
}

// Current returns the question awaiting an answer, or false once the run is
// finished.
func (r *WordsRun) Current() (WordQuestion, bool) {
	if r.finished || r.index >= len(r.questions) {
		return WordQuestion{}, false
	}
	return r.questions[r.index], true
}

// Answer scores the chosen option against the current question. The chosen
// option must match the target translation exactly. A correct answer earns XP
// with a combo bonus once the combo has reached three, advances daily
// progress; an incorrect one resets the combo and records a mistake. Repeated
// answers to the same question are ignored.
func (r *WordsRun) Answer(ctx context.Context, answer string) (WordAnswer, bool) {
	q, ok := r.Current()
	if !ok || r.answered {
		return WordAnswer{}, false
	}
	r.answered = true

	if answer == q.CorrectAnswer {
		r.score++
		earned := wordXPPerCorrect
		if r.combo >= 3 {
			earned += comboBonusXP
		}
		r.combo++
		r.set.Gamification.AddXP(ctx, earned)
		r.set.Gamification.UpdateDailyProgress(ctx, 1)
		return WordAnswer{Correct: true, CorrectAnswer: q.CorrectAnswer, XPEarned: earned, Combo: r.combo}, true
	}

	r.combo = 0
	r.set.Mistakes.AddMistake(ctx, store.MistakeInput{
		Type:          store.MistakeWord,
		QuestionID:    q.Word.ID,
		Question:      q.Word.Word,
		UserAnswer:    answer,
		CorrectAnswer: q.CorrectAnswer,
	})
	return WordAnswer{Correct: false, CorrectAnswer: q.CorrectAnswer}, true
}

// Next advances to the next question. On the last question it instead closes
// the run: evaluates the streak and finalizes the session record.
func (r *WordsRun) Next(ctx context.Context) {
	if r.finished || !r.answered {
		return
	}
	r.answered = false

	if r.index < len(r.questions)-1 {
		r.index++
		return
	}

	r.finished = true
	r.set.Gamification.UpdateStreak(ctx)

	learned := make([]string, 0, len(r.questions))
	for _, q := range r.questions {
		learned = append(learned, q.Word.Word)
	}
	r.set.Sessions.EndSession(ctx, r.score, questionsPerSession, r.score*wordXPPerCorrect, learned)
}

// Finished reports whether the run has been closed.
func (r *WordsRun) Finished() bool {
	return r.finished
}

// Progress describes how far along the run is.
func (r *WordsRun) Progress() (index, total, score, combo int) {
	return r.index, len(r.questions), r.score, r.combo
}
