// Package schedule runs the background jobs that the stores themselves do not
// trigger, such as the daily-goal reset at local midnight.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/wordforge-app/wordforge/internal/store"
)

const processTimeout = 10 * time.Second

type DailyResetConfig struct {
	Hour     int
	Location *time.Location
}

// StartDailyResetSchedule clears daily progress for every persisted user scope
// once per day at the configured hour. Progress is not carried over; the
// stores only ever reset on this external trigger.
func StartDailyResetSchedule(ctx context.Context, conf DailyResetConfig, registry *store.Registry, log *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "panic", "error", r)
		}
	}()

	log.InfoContext(ctx, "daily reset schedule started")
	defer log.InfoContext(ctx, "daily reset schedule stopped")

	for {
		next := nextResetTime(time.Now().In(conf.Location), conf.Hour)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		runDailyReset(ctx, registry, log)
	}
}

// runDailyReset walks every persisted scope, not just the ones loaded in this
// process, so progress written in earlier process lifetimes is reset too.
func runDailyReset(ctx context.Context, registry *store.Registry, log *slog.Logger) {
	log.DebugContext(ctx, "daily reset execution started")

	scopes, err := registry.PersistedScopes(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to list scopes for daily reset", "error", err)
		return
	}

	for _, scope := range scopes {
		resetCtx, cancel := context.WithTimeout(ctx, processTimeout)
		registry.ForUser(resetCtx, scope).Gamification.ResetDailyProgress(resetCtx)
		cancel()
	}

	log.DebugContext(ctx, "daily reset execution finished", "scopes", len(scopes))
}

func nextResetTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
