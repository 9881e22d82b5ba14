package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
	"github.com/wordforge-app/wordforge/internal/telegram"
)

type (
	Cache interface {
		Get(key string) (string, bool)
		Set(key, value string, ttl time.Duration)
	}

	AuthDependencies struct {
		Registry         *store.Registry
		JWTProcessor     *JWTProcessor
		CookiesProcessor *CookiesProcessor
		Cache            Cache
		BotToken         string
		InitDataMaxAge   time.Duration
		Logger           *slog.Logger
	}

	AuthHandler struct {
		registry         *store.Registry
		jwtProcessor     *JWTProcessor
		cookiesProcessor *CookiesProcessor
		seenInitData     Cache
		botToken         string
		initDataMaxAge   time.Duration

		log *slog.Logger
	}

	telegramAuthRequest struct {
		InitData string `json:"init_data" validate:"required,min=1"`
	}

	statusResponse struct {
		Authenticated bool   `json:"authenticated"`
		UserID        string `json:"user_id,omitempty"`
	}
)

func NewAuthHandler(deps AuthDependencies) *AuthHandler {
	return &AuthHandler{
		registry:         deps.Registry,
		jwtProcessor:     deps.JWTProcessor,
		cookiesProcessor: deps.CookiesProcessor,
		seenInitData:     deps.Cache,
		botToken:         deps.BotToken,
		initDataMaxAge:   deps.InitDataMaxAge,

		log: deps.Logger,
	}
}

// Telegram authenticates a Mini App launch. The signed init data is verified
// against the bot token; each payload is accepted once within its validity
// window to prevent replay.
func (h *AuthHandler) Telegram(c echo.Context) error {
	var req telegramAuthRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}
	if err := c.Validate(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	data, err := telegram.ParseInitData(req.InitData, h.botToken, h.initDataMaxAge)
	if err != nil {
		h.log.WarnContext(c.Request().Context(), "failed to verify init data", "error", err)
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid init data"})
	}
	if data.User == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "init data has no user"})
	}

	if _, seen := h.seenInitData.Get(data.Hash); seen {
		h.log.WarnContext(c.Request().Context(), "init data replay", "user_id", data.User.ID)
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "init data already used"})
	}
	h.seenInitData.Set(data.Hash, strconv.FormatInt(data.User.ID, 10), h.initDataMaxAge)

	userID := strconv.FormatInt(data.User.ID, 10)
	set := h.registry.ForUser(c.Request().Context(), userID)
	set.User.InitializeFromTelegram(c.Request().Context(), &store.TelegramIdentity{
		ID:        data.User.ID,
		Username:  data.User.Username,
		FirstName: data.User.FirstName,
		PhotoURL:  data.User.PhotoURL,
	})

	profile, ok := set.User.User()
	if !ok {
		h.log.ErrorContext(c.Request().Context(), "profile missing after telegram init", "user_id", userID)
		return c.JSON(http.StatusInternalServerError, InternalServerError)
	}

	return h.issueToken(c, userID, profile)
}

// Guest opens a session without Telegram identity. The profile is created on
// first call and keeps its generated id for subsequent launches with the same
// cookie.
func (h *AuthHandler) Guest(c echo.Context) error {
	if token, ok := h.cookiesProcessor.GetAccessToken(c); ok {
		if userID, err := h.jwtProcessor.ParseAccessToken(token); err == nil {
			set := h.registry.ForUser(c.Request().Context(), userID)
			set.User.InitializeUser(c.Request().Context())
			if profile, ok := set.User.User(); ok {
				return h.issueToken(c, userID, profile)
			}
		}
	}

	userID := uuid.NewString()
	set := h.registry.ForUser(c.Request().Context(), userID)
	set.User.InitializeUser(c.Request().Context())
	profile, ok := set.User.User()
	if !ok {
		h.log.ErrorContext(c.Request().Context(), "profile missing after guest init")
		return c.JSON(http.StatusInternalServerError, InternalServerError)
	}

	return h.issueToken(c, userID, profile)
}

func (h *AuthHandler) Status(c echo.Context) error {
	var res statusResponse

	token, ok := h.cookiesProcessor.GetAccessToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, res)
	}
	userID, err := h.jwtProcessor.ParseAccessToken(token)
	if err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to parse access token", "error", err)
		return c.JSON(http.StatusUnauthorized, res)
	}

	res.Authenticated = true
	res.UserID = userID
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Info(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": userID,
	})
}

func (h *AuthHandler) LogOut(c echo.Context) error {
	c.SetCookie(h.cookiesProcessor.ExpireAccessTokenCookie())
	return c.JSON(http.StatusOK, nil)
}

func (h *AuthHandler) issueToken(c echo.Context, userID string, profile store.Profile) error {
	accessToken, err := h.jwtProcessor.ToAccessToken(userID, profile.Username)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to create access token", "error", err)
		return c.JSON(http.StatusInternalServerError, InternalServerError)
	}
	c.SetCookie(h.cookiesProcessor.NewAccessTokenCookie(accessToken))

	return c.JSON(http.StatusOK, echo.Map{
		"user": profile,
	})
}
