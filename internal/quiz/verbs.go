package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/wordforge-app/wordforge/internal/content"
	"github.com/wordforge-app/wordforge/internal/store"
)

const (
	verbXPPerCorrect = 15
	hintPenaltyXP    = 5
)

type (
	// VerbQuestion asks for the past and participle forms of a base verb.
	VerbQuestion struct {
		ID          string             `json:"id"`
		Base        string             `json:"base"`
		Translation string             `json:"translation"`
		Difficulty  content.Difficulty `json:"difficulty"`
	}

	// VerbAnswer is the outcome of submitting both forms for one verb.
	VerbAnswer struct {
		PastCorrect       bool   `json:"past_correct"`
		ParticipleCorrect bool   `json:"participle_correct"`
		Past              string `json:"past"`
		Participle        string `json:"participle"`
		XPEarned          int    `json:"xp_earned"`
	}

	// VerbsRun is one verbs-quiz session in progress.
	VerbsRun struct {
		set       *store.Set
		verbs     []content.Verb
		index     int
		score     int
		hintsUsed int
		hinted    bool
		submitted bool
		finished  bool
	}
)

// NewVerbsRun draws a verb set from the static content and opens a session in
// the session store.
func NewVerbsRun(ctx context.Context, set *store.Set) *VerbsRun {
	verbs := content.RandomVerbs(questionsPerSession)
	set.Sessions.StartSession(ctx, store.ModeVerbs)
	return &VerbsRun{set: set, verbs: verbs}
}

// Current returns the question awaiting a submission, or false once the run
// is finished.
func (r *VerbsRun) Current() (VerbQuestion, bool) {
	if r.finished || r.index >= len(r.verbs) {
		return VerbQuestion{}, false
	}
	v := r.verbs[r.index]
	return VerbQuestion{ID: v.ID, Base: v.Base, Translation: v.Translation, Difficulty: v.Difficulty}, true
}

// UseHint reveals the answer for the current question. A used hint reduces
// the XP awarded for that question.
func (r *VerbsRun) UseHint() (content.Verb, bool) {
	if r.finished || r.submitted || r.index >= len(r.verbs) {
		return content.Verb{}, false
	}
	if !r.hinted {
		r.hinted = true
		r.hintsUsed++
	}
	return r.verbs[r.index], true
}

// Submit checks both forms independently. The question counts as correct only
// when both pass; a failing field records one mistake each, and no XP is
// awarded. Repeated submissions for the same question are ignored.
func (r *VerbsRun) Submit(ctx context.Context, past, participle string) (VerbAnswer, bool) {
	if r.finished || r.submitted || r.index >= len(r.verbs) {
		return VerbAnswer{}, false
	}
	r.submitted = true

	v := r.verbs[r.index]
	pastCorrect := matchesAnswer(past, v.Past)
	participleCorrect := matchesAnswer(participle, v.Participle)

	res := VerbAnswer{
		PastCorrect:       pastCorrect,
		ParticipleCorrect: participleCorrect,
		Past:              v.Past,
		Participle:        v.Participle,
	}

	if pastCorrect && participleCorrect {
		r.score++
		earned := verbXPPerCorrect
		if r.hinted {
			earned -= hintPenaltyXP
		}
		res.XPEarned = earned
		r.set.Gamification.AddXP(ctx, earned)
		r.set.Gamification.UpdateDailyProgress(ctx, 1)
		return res, true
	}

	if !pastCorrect {
		r.set.Mistakes.AddMistake(ctx, store.MistakeInput{
			Type:          store.MistakeVerb,
			QuestionID:    v.ID,
			Question:      fmt.Sprintf("%s (past)", v.Base),
			UserAnswer:    past,
			CorrectAnswer: v.Past,
		})
	}
	if !participleCorrect {
		r.set.Mistakes.AddMistake(ctx, store.MistakeInput{
			Type:          store.MistakeVerb,
			QuestionID:    v.ID,
			Question:      fmt.Sprintf("%s (participle)", v.Base),
			UserAnswer:    participle,
			CorrectAnswer: v.Participle,
		})
	}
	return res, true
}

// Next advances to the next question. On the last question it instead closes
// the run: evaluates the streak and finalizes the session record.
func (r *VerbsRun) Next(ctx context.Context) {
	if r.finished || !r.submitted {
		return
	}
	r.submitted = false
	r.hinted = false

	if r.index < len(r.verbs)-1 {
		r.index++
		return
	}

	r.finished = true
	r.set.Gamification.UpdateStreak(ctx)

	learned := make([]string, 0, len(r.verbs))
	for _, v := range r.verbs {
		learned = append(learned, v.Base)
	}
	r.set.Sessions.EndSession(ctx, r.score, questionsPerSession, r.score*verbXPPerCorrect, learned)
}

// Finished reports whether the run has been closed.
func (r *VerbsRun) Finished() bool {
	return r.finished
}

// Progress describes how far along the run is.
func (r *VerbsRun) Progress() (index, total, score, hintsUsed int) {
	return r.index, len(r.verbs), r.score, r.hintsUsed
}

// matchesAnswer compares a user answer against the accepted form. Both sides
// are trimmed and lowercased, and an accepted form may list alternatives
// separated by "/", any of which passes.
func matchesAnswer(answer, accepted string) bool {
	normalized := normalizeAnswer(answer)
	correct := normalizeAnswer(accepted)

	if strings.Contains(correct, "/") {
		for _, alt := range strings.Split(correct, "/") {
			if strings.TrimSpace(alt) == normalized {
				return true
			}
		}
		return false
	}
	return normalized == correct
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
