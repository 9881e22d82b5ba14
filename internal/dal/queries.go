package dal

import (
	"github.com/Masterminds/squirrel"
)

// PutStateQuery builds a query to insert or replace a persisted state blob
func PutStateQuery(scope, key string, value []byte) squirrel.Sqlizer {
	return squirrel.Insert("store_states").
		Columns("scope", "key", "value", "updated_at").
		Values(scope, key, value, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP")
}

// GetStateQuery builds a query to read one persisted state blob
func GetStateQuery(scope, key string) squirrel.Sqlizer {
	return squirrel.Select("value").
		From("store_states").
		Where(squirrel.Eq{"scope": scope, "key": key})
}

// DeleteStateQuery builds a query to drop one persisted state blob
func DeleteStateQuery(scope, key string) squirrel.Sqlizer {
	return squirrel.Delete("store_states").
		Where(squirrel.Eq{"scope": scope, "key": key})
}

// ListScopesQuery builds a query to enumerate every scope with persisted state
func ListScopesQuery() squirrel.Sqlizer {
	return squirrel.Select("DISTINCT scope").
		From("store_states").
		OrderBy("scope")
}

// UpsertBotUserQuery builds a query to register or refresh a bot user
func UpsertBotUserQuery(user BotUser) squirrel.Sqlizer {
	return squirrel.Insert("bot_users").
		Columns("chat_id", "username", "first_name", "last_name").
		Values(user.ChatID, user.Username, user.FirstName, user.LastName).
		Suffix("ON CONFLICT (chat_id) DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name")
}

// FindBotUserQuery builds a query to find a bot user by chat id
func FindBotUserQuery(chatID int64) squirrel.Sqlizer {
	return squirrel.Select("chat_id", "username", "first_name", "last_name", "created_at").
		From("bot_users").
		Where(squirrel.Eq{"chat_id": chatID})
}

// FindBotUsersQuery builds paged select and count queries over bot users
func FindBotUsersQuery(offset, limit uint64) (selectQuery, countQuery squirrel.Sqlizer) {
	baseQuery := squirrel.Select().From("bot_users")

	selectQuery = baseQuery.
		Columns("chat_id", "username", "first_name", "last_name", "created_at").
		OrderBy("created_at").
		Offset(offset).
		Limit(limit)

	countQuery = baseQuery.Columns("COUNT(*)")

	return selectQuery, countQuery
}
