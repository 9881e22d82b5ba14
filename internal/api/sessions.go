package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
)

type (
	SessionsQueryParams struct {
		Mode  string `query:"mode" validate:"omitempty,oneof=words verbs custom"`
		Limit int    `query:"limit" validate:"min=0,max=100"`
	}

	SessionsHandler struct {
		registry *store.Registry
		log      *slog.Logger
	}
)

func NewSessionsHandler(registry *store.Registry, log *slog.Logger) *SessionsHandler {
	return &SessionsHandler{
		registry: registry,
		log:      log,
	}
}

func (h *SessionsHandler) FindSessions(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var qp SessionsQueryParams
	if err := c.Bind(&qp); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	if err := c.Validate(&qp); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	var sessions []store.Session
	if qp.Mode == "" {
		sessions = set.Sessions.RecentSessions(qp.Limit)
	} else {
		sessions = set.Sessions.SessionsByMode(store.Mode(qp.Mode))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": sessions,
		"total": len(sessions),
	})
}

func (h *SessionsHandler) CurrentSession(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	session, ok := set.Sessions.CurrentSession()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no session in progress"})
	}

	return c.JSON(http.StatusOK, session)
}
