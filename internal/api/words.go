package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/store"
)

type (
	CreateWordRequest struct {
		Word        string `json:"word" validate:"required,min=1"`
		Translation string `json:"translation" validate:"required,min=1"`
		Example     string `json:"example"`
	}

	UpdateWordRequest struct {
		Word        *string `json:"word,omitempty" validate:"omitempty,min=1"`
		Translation *string `json:"translation,omitempty" validate:"omitempty,min=1"`
		Example     *string `json:"example,omitempty"`
	}

	WordsQueryParams struct {
		Search string `query:"search"`
	}

	WordsHandler struct {
		registry *store.Registry
		log      *slog.Logger
	}
)

func NewWordsHandler(registry *store.Registry, log *slog.Logger) *WordsHandler {
	return &WordsHandler{
		registry: registry,
		log:      log,
	}
}

func (h *WordsHandler) FindWords(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var qp WordsQueryParams
	if err := c.Bind(&qp); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	words := set.CustomWords.SearchCustomWords(qp.Search)

	return c.JSON(http.StatusOK, echo.Map{
		"items": words,
		"total": len(words),
	})
}

func (h *WordsHandler) CreateWord(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var req CreateWordRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	if err := c.Validate(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	word := set.CustomWords.AddCustomWord(c.Request().Context(), store.CustomWordInput{
		Word:        req.Word,
		Translation: req.Translation,
		Example:     req.Example,
	})

	return c.JSON(http.StatusOK, word)
}

func (h *WordsHandler) UpdateWord(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var req UpdateWordRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	if err := c.Validate(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.CustomWords.UpdateCustomWord(c.Request().Context(), c.Param("id"), store.CustomWordUpdate{
		Word:        req.Word,
		Translation: req.Translation,
		Example:     req.Example,
	})

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "word updated"})
}

func (h *WordsHandler) DeleteWord(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	set := h.registry.ForUser(c.Request().Context(), userID)
	set.CustomWords.DeleteCustomWord(c.Request().Context(), c.Param("id"))

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "word deleted"})
}
