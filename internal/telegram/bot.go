package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/wordforge-app/wordforge/internal/dal"
	"github.com/wordforge-app/wordforge/internal/store"
	"github.com/wordforge-app/wordforge/pkg/cache"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandStats = "/stats"

	statsCacheTTL  = 1 * time.Minute
	processTimeout = 10 * time.Second
)

type (
	Cache interface {
		Get(key string) (string, bool)
		Set(key, value string, ttl time.Duration)
	}

	Bot struct {
		bot       *tb.Bot
		repo      dal.Repository
		registry  *store.Registry
		webAppURL string
		cache     Cache

		middlewares []tb.MiddlewareFunc

		log *slog.Logger
	}
)

func NewBot(ctx context.Context, token, webAppURL string, repo dal.Repository, registry *store.Registry, log *slog.Logger, middlewares ...tb.MiddlewareFunc) (*Bot, error) {
	b, err := tb.NewBot(tb.Settings{
		Token: token,
		Poller: &tb.LongPoller{
			Timeout: 1 * time.Minute,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &Bot{
		bot:         b,
		repo:        repo,
		registry:    registry,
		webAppURL:   webAppURL,
		cache:       cache.NewInMemory(ctx),
		middlewares: middlewares,
		log:         log,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	b.bot.Handle(commandStart, b.HandleStart, b.middlewares...)
	b.bot.Handle(commandHelp, b.HandleHelp, b.middlewares...)
	b.bot.Handle(commandStats, b.HandleStats, b.middlewares...)

	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()

	b.bot.Start()
}

func (b *Bot) HandleStart(m tb.Context) error {
	ctx, cancel := processCtx()
	defer cancel()

	sender := m.Sender()
	if sender == nil {
		return m.Reply("something went wrong")
	}

	user := dal.BotUser{
		ChatID:    m.Chat().ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}
	if err := b.repo.UpsertBotUser(ctx, user); err != nil {
		b.log.ErrorContext(ctx, "failed to register user", "error", err, "chat_id", user.ChatID)
		return m.Reply("failed to register, please try again later")
	}

	name := sender.FirstName
	if name == "" {
		name = sender.Username
	}
	return m.Reply(
		fmt.Sprintf("Welcome, %s!\nPractice words and irregular verbs, keep your streak and earn XP.", name),
		openAppMarkup(b.webAppURL),
	)
}

func (b *Bot) HandleHelp(m tb.Context) error {
	return m.Reply("Commands:\n/start - open the learning app\n/stats - your learning progress\n/help - this message", openAppMarkup(b.webAppURL))
}

func (b *Bot) HandleStats(m tb.Context) error {
	ctx, cancel := processCtx()
	defer cancel()

	scope := strconv.FormatInt(m.Chat().ID, 10)
	if cached, ok := b.cache.Get(scope); ok {
		return m.Reply(cached)
	}

	set := b.registry.ForUser(ctx, scope)
	state := set.Gamification.State()
	sessions := set.Sessions.RecentSessions(10)
	mistakes := len(set.Mistakes.Mistakes())

	msg := fmt.Sprintf("Level: %d\nXP: %d\nStreak: %d days\nDaily goal: %d/%d\nRecent sessions: %d\nMistakes to review: %d",
		state.Level, state.XP, state.Streak, state.DailyProgress, state.DailyGoal, len(sessions), mistakes)

	if _, total, err := b.repo.FindBotUsers(ctx, 0, 1); err == nil {
		msg += fmt.Sprintf("\nLearners on WordForge: %d", total)
	} else {
		b.log.WarnContext(ctx, "failed to count bot users", "error", err)
	}
	b.cache.Set(scope, msg, statsCacheTTL)

	return m.Reply(msg)
}

func openAppMarkup(webAppURL string) *tb.ReplyMarkup {
	return &tb.ReplyMarkup{
		InlineKeyboard: [][]tb.InlineButton{
			{
				{
					Text:   "Open WordForge",
					WebApp: &tb.WebApp{URL: webAppURL},
				},
			},
		},
	}
}

func processCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), processTimeout)
}
