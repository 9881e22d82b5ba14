package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	appctx "github.com/wordforge-app/wordforge/internal/context"
	"github.com/wordforge-app/wordforge/internal/quiz"
)

type (
	WordAnswerRequest struct {
		Answer string `json:"answer" validate:"required,min=1"`
	}

	VerbAnswerRequest struct {
		Past       string `json:"past"`
		Participle string `json:"participle"`
	}

	QuizHandler struct {
		quizzes *quiz.Manager
		log     *slog.Logger
	}
)

func NewQuizHandler(quizzes *quiz.Manager, log *slog.Logger) *QuizHandler {
	return &QuizHandler{
		quizzes: quizzes,
		log:     log,
	}
}

func (h *QuizHandler) StartWords(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run := h.quizzes.StartWords(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, wordsRunView(run))
}

func (h *QuizHandler) WordsState(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run, ok := h.quizzes.Words(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no words quiz in progress"})
	}
	return c.JSON(http.StatusOK, wordsRunView(run))
}

func (h *QuizHandler) AnswerWord(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var req WordAnswerRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}
	if err := c.Validate(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	run, ok := h.quizzes.Words(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no words quiz in progress"})
	}

	res, ok := run.Answer(c.Request().Context(), req.Answer)
	if !ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Message: "question already answered"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *QuizHandler) NextWord(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run, ok := h.quizzes.Words(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no words quiz in progress"})
	}

	run.Next(c.Request().Context())
	return c.JSON(http.StatusOK, wordsRunView(run))
}

func (h *QuizHandler) StartVerbs(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run := h.quizzes.StartVerbs(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, verbsRunView(run))
}

func (h *QuizHandler) VerbsState(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run, ok := h.quizzes.Verbs(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no verbs quiz in progress"})
	}
	return c.JSON(http.StatusOK, verbsRunView(run))
}

func (h *QuizHandler) AnswerVerb(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	var req VerbAnswerRequest
	if err := c.Bind(&req); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, BadRequestError)
	}

	run, ok := h.quizzes.Verbs(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no verbs quiz in progress"})
	}

	res, ok := run.Submit(c.Request().Context(), req.Past, req.Participle)
	if !ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Message: "question already answered"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *QuizHandler) VerbHint(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run, ok := h.quizzes.Verbs(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no verbs quiz in progress"})
	}

	verb, ok := run.UseHint()
	if !ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Message: "hint not available"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"past":       verb.Past,
		"participle": verb.Participle,
	})
}

func (h *QuizHandler) NextVerb(c echo.Context) error {
	userID := appctx.MustUserIDFromContext(c.Request().Context())

	run, ok := h.quizzes.Verbs(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "no verbs quiz in progress"})
	}

	run.Next(c.Request().Context())
	return c.JSON(http.StatusOK, verbsRunView(run))
}

func wordsRunView(run *quiz.WordsRun) echo.Map {
	index, total, score, combo := run.Progress()
	res := echo.Map{
		"index":    index,
		"total":    total,
		"score":    score,
		"combo":    combo,
		"finished": run.Finished(),
	}
	if q, ok := run.Current(); ok {
		// the word's translation is the answer, so only safe fields go out
		res["question"] = echo.Map{
			"id":      q.ID,
			"word":    q.Word.Word,
			"example": q.Word.Example,
			"options": q.Options,
		}
	}
	return res
}

func verbsRunView(run *quiz.VerbsRun) echo.Map {
	index, total, score, hintsUsed := run.Progress()
	res := echo.Map{
		"index":      index,
		"total":      total,
		"score":      score,
		"hints_used": hintsUsed,
		"finished":   run.Finished(),
	}
	if q, ok := run.Current(); ok {
		res["question"] = q
	}
	return res
}
