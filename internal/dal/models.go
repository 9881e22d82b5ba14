package dal

import "time"

type (
	// StateRecord is one persisted store blob, namespaced by the owning user's
	// scope and the store's key.
	StateRecord struct {
		Scope     string
		Key       string
		Value     []byte
		UpdatedAt time.Time
	}

	// BotUser is a Telegram account that opened the bot at least once.
	BotUser struct {
		ChatID    int64
		Username  string
		FirstName string
		LastName  string
		CreatedAt time.Time
	}
)
