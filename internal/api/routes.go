package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/wordforge-app/wordforge/internal/config"
	"github.com/wordforge-app/wordforge/internal/quiz"
	"github.com/wordforge-app/wordforge/internal/store"
	"github.com/wordforge-app/wordforge/pkg/cache"
)

type (
	Dependencies struct {
		Registry *store.Registry
		Quizzes  *quiz.Manager
		Logger   *slog.Logger
	}
)

func NewRouter(ctx context.Context, conf *config.API, deps Dependencies) http.Handler {
	e := echo.New()

	e.Use(middleware.RequestID())
	e.Use(loggingMiddleware(ctx, deps.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(conf.HTTP.RateLimit))))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.HTTP.CORS.AllowOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: conf.HTTP.ProcessTimeout,
	}))
	e.Use(middleware.Secure())

	e.HTTPErrorHandler = HTTPErrorHandler(deps.Logger)
	e.Validator = NewValidator()

	jwtProcessor := NewJWTProcessor(conf.HTTP.JWT, conf.HTTP.Cookie.AccessExpiresIn)
	cookiesProcessor := NewCookiesProcessor(conf.HTTP.Cookie)

	authMiddleware := AuthMiddleware(cookiesProcessor, jwtProcessor, deps.Logger)
	auth := NewAuthHandler(AuthDependencies{
		Registry:         deps.Registry,
		JWTProcessor:     jwtProcessor,
		CookiesProcessor: cookiesProcessor,
		Cache:            cache.NewInMemory(ctx),
		BotToken:         conf.Telegram.Token,
		InitDataMaxAge:   conf.Telegram.InitDataMaxAge,
		Logger:           deps.Logger,
	})

	e.POST("/auth/telegram", auth.Telegram)
	e.POST("/auth/guest", auth.Guest)
	e.GET("/auth/status", auth.Status)
	e.POST("/auth/logout", auth.LogOut)

	securedGroup := e.Group("", authMiddleware)
	securedGroup.GET("/auth/info", auth.Info)

	profile := NewProfileHandler(deps.Registry, deps.Logger)
	securedGroup.GET("/profile", profile.GetProfile)
	securedGroup.PUT("/profile", profile.UpdateProfile)

	words := NewWordsHandler(deps.Registry, deps.Logger)
	securedGroup.GET("/words", words.FindWords)
	securedGroup.POST("/words", words.CreateWord)
	securedGroup.PUT("/words/:id", words.UpdateWord)
	securedGroup.DELETE("/words/:id", words.DeleteWord)

	mistakes := NewMistakesHandler(deps.Registry, deps.Logger)
	securedGroup.GET("/mistakes", mistakes.FindMistakes)
	securedGroup.POST("/mistakes/:id/retry", mistakes.RetryMistake)
	securedGroup.DELETE("/mistakes/:id", mistakes.DeleteMistake)
	securedGroup.DELETE("/mistakes", mistakes.ClearMistakes)

	sessions := NewSessionsHandler(deps.Registry, deps.Logger)
	securedGroup.GET("/sessions", sessions.FindSessions)
	securedGroup.GET("/sessions/current", sessions.CurrentSession)

	gamification := NewGamificationHandler(deps.Registry, deps.Logger)
	securedGroup.GET("/gamification", gamification.GetState)
	securedGroup.GET("/gamification/achievements", gamification.GetAchievements)
	securedGroup.POST("/gamification/achievements/:id/unlock", gamification.UnlockAchievement)

	quizzes := NewQuizHandler(deps.Quizzes, deps.Logger)
	securedGroup.POST("/quiz/words", quizzes.StartWords)
	securedGroup.GET("/quiz/words", quizzes.WordsState)
	securedGroup.POST("/quiz/words/answer", quizzes.AnswerWord)
	securedGroup.POST("/quiz/words/next", quizzes.NextWord)
	securedGroup.POST("/quiz/verbs", quizzes.StartVerbs)
	securedGroup.GET("/quiz/verbs", quizzes.VerbsState)
	securedGroup.POST("/quiz/verbs/answer", quizzes.AnswerVerb)
	securedGroup.POST("/quiz/verbs/hint", quizzes.VerbHint)
	securedGroup.POST("/quiz/verbs/next", quizzes.NextVerb)

	return e
}

func loggingMiddleware(ctx context.Context, log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				log.LogAttrs(ctx, slog.LevelInfo, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				log.LogAttrs(ctx, slog.LevelError, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	})
}
