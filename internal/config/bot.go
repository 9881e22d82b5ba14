package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Bot struct {
	Dev           bool   `default:"false"`
	TelegramToken string `envconfig:"TELEGRAM_TOKEN" default:""`
	WebAppURL     string `envconfig:"WEBAPP_URL" default:""`
	DBPath        string `envconfig:"DB_PATH" default:""`
}

func GetBot(ctx context.Context) (*Bot, error) {
	res := &Bot{}
	if err := envconfig.Process("BOT", res); err != nil {
		return nil, fmt.Errorf("parse bot environment: %w", err)
	}

	if !res.Dev {
		if err := setBotProdConfig(ctx, res); err != nil {
			return nil, fmt.Errorf("set bot prod config: %w", err)
		}
	}

	return validateBot(res)
}

func validateBot(conf *Bot) (*Bot, error) {
	errs := make([]string, 0, 2)
	if conf.DBPath == "" {
		errs = append(errs, "db path is required")
	}
	if conf.TelegramToken == "" {
		errs = append(errs, "telegram token is required")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, ", "))
	}

	return conf, nil
}

func setBotProdConfig(ctx context.Context, target *Bot) error {
	parameters, err := FetchAWSParams(ctx,
		"/wordforge/prod/telegram-token",
		"/wordforge/prod/webapp-url",
		"/wordforge/prod/db-path",
	)
	if err != nil {
		return fmt.Errorf("get parameters: %w", err)
	}

	for name, value := range parameters {
		switch name {
		case "/wordforge/prod/telegram-token":
			target.TelegramToken = value
		case "/wordforge/prod/webapp-url":
			target.WebAppURL = value
		case "/wordforge/prod/db-path":
			target.DBPath = value
		}
	}

	return nil
}
