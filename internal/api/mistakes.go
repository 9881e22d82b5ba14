package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
)

type (
	MistakesQueryParams struct {
		Type string `query:"type" validate:"omitempty,oneof=word verb"`
	}

	MistakesHandler struct {
		registry *store.Registry
		log      *slog.Logger
	}
)

func NewMistakesHandler(registry *store.Registry, log *slog.Logger) *MistakesHandler {
	return &MistakesHandler{
		registry: registry,
		log:      log,
	}
}

func (h *MistakesHandler) FindMistakes(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var qp MistakesQueryParams
	if err := c.Bind(&qp); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	if err := c.Validate(&qp); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	var mistakes []store.Mistake
	if qp.Type == "" {
		mistakes = set.Mistakes.Mistakes()
	} else {
		mistakes = set.Mistakes.MistakesByType(store.MistakeType(qp.Type))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": mistakes,
		"total": len(mistakes),
	})
}

func (h *MistakesHandler) RetryMistake(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.Mistakes.IncrementRetry(c.Request().Context(), c.Param("id"))

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "retry recorded"})
}

func (h *MistakesHandler) DeleteMistake(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.Mistakes.RemoveMistake(c.Request().Context(), c.Param("id"))

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "mistake deleted"})
}

func (h *MistakesHandler) ClearMistakes(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.Mistakes.ClearAllMistakes(c.Request().Context())

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "mistakes cleared"})
}
