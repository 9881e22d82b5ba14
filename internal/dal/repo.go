package dal

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type (
	// StateRepository is the durable backing for persisted store state. Each
	// store's full state lives under one (scope, key) cell; GetState returns
	// ErrNotFound for a cell that has never been written, which readers treat
	// as first run.
	StateRepository interface {
		GetState(ctx context.Context, scope, key string) ([]byte, error)
		PutState(ctx context.Context, scope, key string, value []byte) error
		DeleteState(ctx context.Context, scope, key string) error
		ListScopes(ctx context.Context) ([]string, error)
	}

	BotUsersRepository interface {
		UpsertBotUser(ctx context.Context, user BotUser) error
		FindBotUser(ctx context.Context, chatID int64) (*BotUser, error)
		FindBotUsers(ctx context.Context, offset, limit uint64) ([]BotUser, int, error)
	}

	Repository interface {
		StateRepository
		BotUsersRepository
	}
)
