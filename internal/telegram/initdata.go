package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInitDataHashMissing  = errors.New("init data hash is missing")
	ErrInitDataHashMismatch = errors.New("init data hash mismatch")
	ErrInitDataExpired      = errors.New("init data is expired")
)

type (
	// WebAppUser is the user payload embedded in Mini App init data.
	WebAppUser struct {
		ID           int64  `json:"id"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Username     string `json:"username"`
		LanguageCode string `json:"language_code"`
		PhotoURL     string `json:"photo_url"`
	}

	// InitData is the verified content of a Mini App launch payload.
	InitData struct {
		QueryID  string
		AuthDate time.Time
		Hash     string
		User     *WebAppUser
	}
)

// ParseInitData verifies the HMAC signature of raw Mini App init data against
// the bot token and decodes the payload. Data older than maxAge is rejected;
// a non-positive maxAge disables the age check.
func ParseInitData(raw, botToken string, maxAge time.Duration) (*InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInitDataHashMissing
	}
	values.Del("hash")

	if !validInitDataHash(values, hash, botToken) {
		return nil, ErrInitDataHashMismatch
	}

	res := &InitData{
		QueryID: values.Get("query_id"),
		Hash:    hash,
	}

	if authDateRaw := values.Get("auth_date"); authDateRaw != "" {
		authDate, err := strconv.ParseInt(authDateRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse auth date: %w", err)
		}
		res.AuthDate = time.Unix(authDate, 0)
	}
	if maxAge > 0 && time.Since(res.AuthDate) > maxAge {
		return nil, ErrInitDataExpired
	}

	if userRaw := values.Get("user"); userRaw != "" {
		var user WebAppUser
		if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
			return nil, fmt.Errorf("unmarshal user: %w", err)
		}
		res.User = &user
	}

	return res, nil
}

// validInitDataHash implements the Mini App verification scheme: the check
// string is the sorted "key=value" pairs joined by newlines, signed with
// HMAC-SHA256 under a secret derived from the bot token.
func validInitDataHash(values url.Values, hash, botToken string) bool {
	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(hash))
}
