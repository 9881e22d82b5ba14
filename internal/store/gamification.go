package store

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"
)

const (
	AchievementStreak       AchievementType = "streak"
	AchievementWordsLearned AchievementType = "words_learned"
	AchievementVerbsLearned AchievementType = "verbs_learned"
	AchievementAccuracy     AchievementType = "accuracy"
	AchievementXP           AchievementType = "xp"

	defaultDailyGoal = 20
	xpPerLevel       = 100
)

type (
	AchievementType string

	// Achievement is one entry of the fixed catalog. IsUnlocked transitions
	// false to true exactly once; UnlockedAt is set on that transition.
	Achievement struct {
		ID          string          `json:"id"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Icon        string          `json:"icon"`
		Requirement int             `json:"requirement"`
		Progress    int             `json:"progress"`
		Type        AchievementType `json:"type"`
		IsUnlocked  bool            `json:"is_unlocked"`
		UnlockedAt  *time.Time      `json:"unlocked_at,omitempty"`
	}

	// GamificationState holds XP, level, streak, daily-goal progress and the
	// achievement catalog. Level is derived from XP, never stored
	// authoritatively on its own.
	GamificationState struct {
		XP             int           `json:"xp"`
		Streak         int           `json:"streak"`
		LastActiveDate time.Time     `json:"last_active_date"`
		DailyGoal      int           `json:"daily_goal"`
		DailyProgress  int           `json:"daily_progress"`
		Achievements   []Achievement `json:"achievements"`
		Level          int           `json:"level"`
	}

	// GamificationStore owns the gamification state machine.
	GamificationStore struct {
		mu      sync.Mutex
		state   GamificationState
		adapter Adapter
		now     func() time.Time
		log     *slog.Logger
	}
)

func initialAchievements() []Achievement {
	return []Achievement{
		{ID: "first-word", Title: "First Steps", Description: "Learn your first word", Icon: "🎯", Requirement: 1, Type: AchievementWordsLearned},
		{ID: "10-words", Title: "Word Explorer", Description: "Learn 10 words", Icon: "📚", Requirement: 10, Type: AchievementWordsLearned},
		{ID: "100-words", Title: "Word Master", Description: "Learn 100 words", Icon: "🏆", Requirement: 100, Type: AchievementWordsLearned},
		{ID: "7-day-streak", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Requirement: 7, Type: AchievementStreak},
		{ID: "30-day-streak", Title: "Month Master", Description: "Maintain a 30-day streak", Icon: "⭐", Requirement: 30, Type: AchievementStreak},
		{ID: "100-verbs", Title: "Verb Virtuoso", Description: "Master 100 irregular verbs", Icon: "✨", Requirement: 100, Type: AchievementVerbsLearned},
	}
}

func NewGamificationStore(ctx context.Context, adapter Adapter, log *slog.Logger) *GamificationStore {
	s := &GamificationStore{
		adapter: adapter,
		now:     time.Now,
		log:     log,
	}
	s.state = GamificationState{
		DailyGoal:      defaultDailyGoal,
		LastActiveDate: s.now(),
		Level:          1,
	}
	loadState(ctx, adapter, KeyGamification, &s.state, log)
	return s
}

// State returns a copy of the current state.
func (s *GamificationStore) State() GamificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.state
	res.Achievements = make([]Achievement, len(s.state.Achievements))
	copy(res.Achievements, s.state.Achievements)
	return res
}

// AddXP adds the amount (possibly negative, e.g. a hint penalty) and rederives
// the level. The store does not clamp; callers keep the total non-negative.
func (s *GamificationStore) AddXP(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.XP += amount
	s.state.Level = levelForXP(s.state.XP)
	s.persist(ctx)
}

// UpdateStreak advances or resets the streak based on elapsed wall-clock days
// since the last active date. Same day: no change. Exactly one day: streak+1.
// Anything else, including clock skew: reset to 1, today counts as day one.
func (s *GamificationStore) UpdateStreak(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	diffDays := int(math.Floor(today.Sub(s.state.LastActiveDate).Hours() / 24))

	switch {
	case diffDays == 0:
		return
	case diffDays == 1:
		s.state.Streak++
	default:
		s.state.Streak = 1
	}
	s.state.LastActiveDate = today
	s.persist(ctx)
}

// UpdateDailyProgress increments the daily counter, clamped at the goal.
// Overflow is dropped, never carried over.
func (s *GamificationStore) UpdateDailyProgress(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DailyProgress = min(s.state.DailyProgress+amount, s.state.DailyGoal)
	s.persist(ctx)
}

// ResetDailyProgress zeroes the daily counter. Nothing in the store calls this
// on day rollover; that is the caller's responsibility (see internal/schedule).
func (s *GamificationStore) ResetDailyProgress(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DailyProgress = 0
	s.persist(ctx)
}

// UnlockAchievement marks the matching achievement unlocked. Unlocking an
// already-unlocked or unknown achievement is a no-op.
func (s *GamificationStore) UnlockAchievement(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Achievements {
		if s.state.Achievements[i].ID != id || s.state.Achievements[i].IsUnlocked {
			continue
		}
		unlockedAt := s.now()
		s.state.Achievements[i].IsUnlocked = true
		s.state.Achievements[i].UnlockedAt = &unlockedAt
		s.persist(ctx)
		return
	}
}

// CheckAchievements refreshes progress for the achievement types derivable
// from state, persisting only when something actually moved. Unlocking stays
// explicit through UnlockAchievement; requirement evaluation is the client's
// call, so this never flips IsUnlocked.
func (s *GamificationStore) CheckAchievements(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.state.Achievements {
		progress := s.state.Achievements[i].Progress
		switch s.state.Achievements[i].Type {
		case AchievementStreak:
			progress = s.state.Streak
		case AchievementXP:
			progress = s.state.XP
		}
		if progress != s.state.Achievements[i].Progress {
			s.state.Achievements[i].Progress = progress
			changed = true
		}
	}
	if changed {
		s.persist(ctx)
	}
}

// InitializeGamification seeds the achievement catalog only when the store is
// pristine (no XP and an empty catalog), so a returning user's progress is
// never wiped on app load.
func (s *GamificationStore) InitializeGamification(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.XP != 0 || len(s.state.Achievements) != 0 {
		return
	}
	s.state.Achievements = initialAchievements()
	s.state.LastActiveDate = s.now()
	s.persist(ctx)
}

func (s *GamificationStore) persist(ctx context.Context) {
	saveState(ctx, s.adapter, KeyGamification, s.state, s.log)
}

func levelForXP(xp int) int {
	return xp/xpPerLevel + 1
}
