package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
)

type (
	UpdateProfileRequest struct {
		Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
		Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
	}

	ProfileHandler struct {
		registry *store.Registry
		log      *slog.Logger
	}
)

func NewProfileHandler(registry *store.Registry, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		registry: registry,
		log:      log,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	profile, ok := set.User.User()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "profile not found"})
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	if err := c.Validate(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.User.UpdateUser(c.Request().Context(), store.ProfileUpdate{
		Username: req.Username,
		Avatar:   req.Avatar,
	})

	profile, ok := set.User.User()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "profile not found"})
	}
	return c.JSON(http.StatusOK, profile)
}
