package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const guestUsername = "Guest"

var identityValidator = validator.New()

type (
	// Profile is the current user's identity record. It is created on first
	// launch (guest) or derived from Telegram data, and only ever replaced,
	// never deleted.
	Profile struct {
		ID             string    `json:"id"`
		Username       string    `json:"username"`
		Avatar         string    `json:"avatar,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		LastActiveDate time.Time `json:"last_active_date"`
	}

	// ProfileUpdate carries partial profile edits; nil fields are left as-is.
	ProfileUpdate struct {
		Username       *string    `json:"username,omitempty"`
		Avatar         *string    `json:"avatar,omitempty"`
		LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	}

	// TelegramIdentity is the external identity payload consumed once per app
	// load. It is validated before any profile derivation; a payload that fails
	// validation is treated the same as a derivation failure.
	TelegramIdentity struct {
		ID        int64  `json:"id" validate:"required,gt=0"`
		Username  string `json:"username,omitempty"`
		FirstName string `json:"first_name,omitempty"`
		PhotoURL  string `json:"photo_url,omitempty" validate:"omitempty,url"`
	}

	userState struct {
		User *Profile `json:"user"`
	}

	// UserStore owns the current user's profile record.
	UserStore struct {
		mu      sync.Mutex
		state   userState
		adapter Adapter
		now     func() time.Time
		log     *slog.Logger
	}
)

func NewUserStore(ctx context.Context, adapter Adapter, log *slog.Logger) *UserStore {
	s := &UserStore{
		adapter: adapter,
		now:     time.Now,
		log:     log,
	}
	loadState(ctx, adapter, KeyUser, &s.state, log)
	return s
}

// User returns the current profile, if one exists.
func (s *UserStore) User() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return Profile{}, false
	}
	return *s.state.User, true
}

// SetUser unconditionally replaces the profile.
func (s *UserStore) SetUser(ctx context.Context, profile Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = &profile
	s.persist(ctx)
}

// UpdateUser merges the update into the existing profile. It is a no-op when
// no profile exists.
func (s *UserStore) UpdateUser(ctx context.Context, update ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	if update.Username != nil {
		s.state.User.Username = *update.Username
	}
	if update.Avatar != nil {
		s.state.User.Avatar = *update.Avatar
	}
	if update.LastActiveDate != nil {
		s.state.User.LastActiveDate = *update.LastActiveDate
	}
	s.persist(ctx)
}

// InitializeUser creates a guest profile when none exists yet.
func (s *UserStore) InitializeUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User != nil {
		return
	}
	s.state.User = s.guestProfile()
	s.persist(ctx)
}

// InitializeFromTelegram derives the profile from the external identity. A nil
// or invalid identity falls back to guest creation when no profile exists yet,
// and otherwise leaves the state unchanged; failures never propagate.
func (s *UserStore) InitializeFromTelegram(ctx context.Context, identity *TelegramIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity != nil {
		if err := identityValidator.Struct(identity); err != nil {
			s.log.WarnContext(ctx, "invalid telegram identity payload", "error", err)
			if s.state.User == nil {
				s.state.User = s.guestProfile()
				s.persist(ctx)
			}
			return
		}

		now := s.now()
		createdAt := now
		if s.state.User != nil {
			createdAt = s.state.User.CreatedAt
		}
		s.state.User = &Profile{
			ID:             fmt.Sprintf("%d", identity.ID),
			Username:       deriveUsername(identity),
			Avatar:         identity.PhotoURL,
			CreatedAt:      createdAt,
			LastActiveDate: now,
		}
		s.persist(ctx)
		return
	}

	if s.state.User == nil {
		s.state.User = s.guestProfile()
		s.persist(ctx)
	}
}

func (s *UserStore) guestProfile() *Profile {
	now := s.now()
	return &Profile{
		ID:             newID(),
		Username:       guestUsername,
		CreatedAt:      now,
		LastActiveDate: now,
	}
}

func (s *UserStore) persist(ctx context.Context) {
	saveState(ctx, s.adapter, KeyUser, s.state, s.log)
}

func deriveUsername(identity *TelegramIdentity) string {
	if identity.Username != "" {
		return identity.Username
	}
	if identity.FirstName != "" {
		return identity.FirstName
	}
	return fmt.Sprintf("User%d", identity.ID)
}
