package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
)

type GamificationHandler struct {
	registry *store.Registry
	log      *slog.Logger
}

func NewGamificationHandler(registry *store.Registry, log *slog.Logger) *GamificationHandler {
	return &GamificationHandler{
		registry: registry,
		log:      log,
	}
}

func (h *GamificationHandler) GetState(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, set.Gamification.State())
}

func (h *GamificationHandler) GetAchievements(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.Gamification.CheckAchievements(c.Request().Context())
	state := set.Gamification.State()

	return c.JSON(http.StatusOK, echo.Map{
		"items": state.Achievements,
		"total": len(state.Achievements),
	})
}

func (h *GamificationHandler) UnlockAchievement(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.Gamification.UnlockAchievement(c.Request().Context(), c.Param("id"))

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "achievement processed"})
}
