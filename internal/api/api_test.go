package api_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordforge-app/wordforge/internal/api"
	"github.com/wordforge-app/wordforge/internal/config"
	"github.com/wordforge-app/wordforge/internal/dal"
	"github.com/wordforge-app/wordforge/internal/quiz"
	"github.com/wordforge-app/wordforge/internal/store"
)

const testBotToken = "12345:test-bot-token"

type memStates struct {
	mu    sync.Mutex
	cells map[string][]byte
}

func newMemStates() *memStates {
	return &memStates{cells: make(map[string][]byte)}
}

func (m *memStates) GetState(_ context.Context, scope, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.cells[scope+"/"+key]
	if !ok {
		return nil, dal.ErrNotFound
	}
	return value, nil
}

func (m *memStates) PutState(_ context.Context, scope, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[scope+"/"+key] = value
	return nil
}

func (m *memStates) DeleteState(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cells, scope+"/"+key)
	return nil
}

func (m *memStates) ListScopes(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool)
	res := make([]string, 0, len(m.cells))
	for cell := range m.cells {
		scope := strings.SplitN(cell, "/", 2)[0]
		if !seen[scope] {
			seen[scope] = true
			res = append(res, scope)
		}
	}
	return res, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	conf := &config.API{
		Dev: true,
		HTTP: config.HTTP{
			ProcessTimeout: 5 * time.Second,
			RateLimit:      1000,
			CORS:           config.CORS{AllowOrigins: []string{"*"}},
			Cookie: config.Cookie{
				Path:            "/",
				Domain:          "localhost",
				AccessExpiresIn: time.Hour,
			},
			JWT: config.JWT{
				Issuer:   "wordforge-test",
				Audience: []string{"wordforge"},
				Secret:   "test-secret",
			},
		},
		Telegram: config.Telegram{
			Token:          testBotToken,
			InitDataMaxAge: time.Hour,
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := store.NewRegistry(newMemStates(), log)
	return api.NewRouter(context.Background(), conf, api.Dependencies{
		Registry: registry,
		Quizzes:  quiz.NewManager(registry),
		Logger:   log,
	})
}

func signedInitData(t *testing.T, userJSON string) string {
	t.Helper()

	values := url.Values{}
	values.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
	values.Set("user", userJSON)

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func doJSON(t *testing.T, router http.Handler, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func authenticateGuest(t *testing.T, router http.Handler) []*http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/guest", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestAuth_Guest(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/guest", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		User store.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Guest", res.User.Username)
	assert.NotEmpty(t, res.User.ID)
}

func TestAuth_Telegram(t *testing.T) {
	router := testRouter(t)

	initData := signedInitData(t, `{"id":777,"first_name":"Olena","username":"olena_dev"}`)
	body := fmt.Sprintf(`{"init_data":%q}`, initData)

	rec := doJSON(t, router, http.MethodPost, "/auth/telegram", body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		User store.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "777", res.User.ID)
	assert.Equal(t, "olena_dev", res.User.Username)

	// the same payload is rejected on replay
	rec = doJSON(t, router, http.MethodPost, "/auth/telegram", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_TelegramInvalidSignature(t *testing.T) {
	router := testRouter(t)

	body := `{"init_data":"auth_date=123&hash=deadbeef&user=%7B%22id%22%3A777%7D"}`
	rec := doJSON(t, router, http.MethodPost, "/auth/telegram", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StatusAndLogout(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/auth/status", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := authenticateGuest(t, router)
	rec = doJSON(t, router, http.MethodGet, "/auth/status", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Authenticated bool   `json:"authenticated"`
		UserID        string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Authenticated)
	assert.NotEmpty(t, res.UserID)
}

func TestSecuredRoutes_RequireAuth(t *testing.T) {
	router := testRouter(t)

	for _, target := range []string{"/profile", "/words", "/mistakes", "/sessions", "/gamification"} {
		rec := doJSON(t, router, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestWords_CRUD(t *testing.T) {
	router := testRouter(t)
	cookies := authenticateGuest(t, router)

	rec := doJSON(t, router, http.MethodPost, "/words", `{"word":"serendipity","translation":"щасливий випадок"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created store.CustomWord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rec = doJSON(t, router, http.MethodPost, "/words", `{"word":"","translation":"x"}`, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/words?search=seren", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []store.CustomWord `json:"items"`
		Total int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "serendipity", list.Items[0].Word)

	rec = doJSON(t, router, http.MethodPut, "/words/"+created.ID, `{"translation":"прозріння"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/words/"+created.ID, "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/words", "", cookies)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Zero(t, list.Total)
}

func TestGamification_State(t *testing.T) {
	router := testRouter(t)
	cookies := authenticateGuest(t, router)

	rec := doJSON(t, router, http.MethodGet, "/gamification", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var state store.GamificationState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 20, state.DailyGoal)
	assert.Len(t, state.Achievements, 6)
}

func TestQuiz_WordsFlow(t *testing.T) {
	router := testRouter(t)
	cookies := authenticateGuest(t, router)

	rec := doJSON(t, router, http.MethodGet, "/quiz/words", "", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/quiz/words", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var state struct {
		Total    int  `json:"total"`
		Finished bool `json:"finished"`
		Question struct {
			Word    string   `json:"word"`
			Options []string `json:"options"`
		} `json:"question"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 10, state.Total)
	assert.False(t, state.Finished)
	assert.Len(t, state.Question.Options, 4)

	rec = doJSON(t, router, http.MethodPost, "/quiz/words/answer", `{"answer":"definitely wrong"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var answer struct {
		Correct bool `json:"correct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.False(t, answer.Correct)

	// second answer to the same question conflicts
	rec = doJSON(t, router, http.MethodPost, "/quiz/words/answer", `{"answer":"again"}`, cookies)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/quiz/words/next", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// the mistake is now visible in the mistakes log
	rec = doJSON(t, router, http.MethodGet, "/mistakes?type=word", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var mistakes struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mistakes))
	assert.Equal(t, 1, mistakes.Total)
}

func TestQuiz_VerbsHint(t *testing.T) {
	router := testRouter(t)
	cookies := authenticateGuest(t, router)

	rec := doJSON(t, router, http.MethodPost, "/quiz/verbs", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/quiz/verbs/hint", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var hint struct {
		Past       string `json:"past"`
		Participle string `json:"participle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hint))
	assert.NotEmpty(t, hint.Past)
	assert.NotEmpty(t, hint.Participle)

	// answering with the hinted forms earns reduced XP; a hinted form may
	// list alternatives, any single one is accepted
	past := strings.TrimSpace(strings.Split(hint.Past, "/")[0])
	participle := strings.TrimSpace(strings.Split(hint.Participle, "/")[0])
	body := fmt.Sprintf(`{"past":%q,"participle":%q}`, past, participle)
	rec = doJSON(t, router, http.MethodPost, "/quiz/verbs/answer", body, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var answer struct {
		PastCorrect       bool `json:"past_correct"`
		ParticipleCorrect bool `json:"participle_correct"`
		XPEarned          int  `json:"xp_earned"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.True(t, answer.PastCorrect)
	assert.True(t, answer.ParticipleCorrect)
	assert.Equal(t, 10, answer.XPEarned)
}

func TestProfile_Update(t *testing.T) {
	router := testRouter(t)
	cookies := authenticateGuest(t, router)

	rec := doJSON(t, router, http.MethodPut, "/profile", `{"username":"Learner"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile store.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Learner", profile.Username)

	rec = doJSON(t, router, http.MethodGet, "/profile", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Learner", profile.Username)
}
