package dal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutStateQuery(t *testing.T) {
	query, args, err := PutStateQuery("42", "wordforge-user", []byte(`{}`)).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO store_states")
	assert.Contains(t, query, "ON CONFLICT (scope, key) DO UPDATE")
	assert.Equal(t, []any{"42", "wordforge-user", []byte(`{}`)}, args)
}

func TestGetStateQuery(t *testing.T) {
	query, args, err := GetStateQuery("42", "wordforge-user").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "SELECT value FROM store_states WHERE")
	assert.Contains(t, query, "scope = ?")
	assert.Contains(t, query, "key = ?")
	assert.Len(t, args, 2)
}

func TestDeleteStateQuery(t *testing.T) {
	query, _, err := DeleteStateQuery("42", "wordforge-user").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM store_states WHERE")
	assert.Contains(t, query, "scope = ?")
	assert.Contains(t, query, "key = ?")
}

func TestListScopesQuery(t *testing.T) {
	query, args, err := ListScopesQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT scope FROM store_states ORDER BY scope", query)
	assert.Empty(t, args)
}

func TestUpsertBotUserQuery(t *testing.T) {
	query, args, err := UpsertBotUserQuery(BotUser{ChatID: 42, Username: "u", FirstName: "f", LastName: "l"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO bot_users")
	assert.Contains(t, query, "ON CONFLICT (chat_id) DO UPDATE")
	assert.Equal(t, []any{int64(42), "u", "f", "l"}, args)
}

func TestFindBotUsersQuery(t *testing.T) {
	selectQuery, countQuery := FindBotUsersQuery(10, 25)

	query, _, err := selectQuery.ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY created_at")
	assert.Contains(t, query, "LIMIT 25")
	assert.Contains(t, query, "OFFSET 10")

	query, _, err = countQuery.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM bot_users", query)
}
