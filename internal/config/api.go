package config

import (
	"context"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type (
	DB struct {
		Path string `envconfig:"DB_PATH" default:""`
	}

	CORS struct {
		AllowOrigins []string `envconfig:"ALLOW_ORIGINS" required:"true"`
	}

	JWT struct {
		Issuer   string   `envconfig:"ISSUER" default:"wordforge-api"`
		Audience []string `envconfig:"AUDIENCE" required:"true"`
		Secret   string   `envconfig:"SECRET" default:""`
	}

	Cookie struct {
		Path            string        `envconfig:"CPATH" default:"/"` // not using PATH here because it may conflict with os.Path
		Domain          string        `envconfig:"DOMAIN" required:"true"`
		AccessExpiresIn time.Duration `envconfig:"ACCESS_EXPIRES_IN" default:"24h"`
	}

	HTTP struct {
		ProcessTimeout time.Duration `envconfig:"PROCESS_TIMEOUT" default:"10s"`
		RateLimit      float64       `envconfig:"RATE_LIMIT" default:"25"`
		CORS           CORS
		Cookie         Cookie
		JWT            JWT
	}

	Server struct {
		ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s"`
		Addr              string        `envconfig:"ADDR" default:":8080"`
	}

	Telegram struct {
		Token          string        `envconfig:"TELEGRAM_TOKEN" default:""`
		WebAppURL      string        `envconfig:"WEBAPP_URL" default:""`
		InitDataMaxAge time.Duration `envconfig:"INIT_DATA_MAX_AGE" default:"24h"`
	}

	DailyResetSchedule struct {
		Hour     int    `default:"0"`
		Location string `default:"Europe/Kyiv"`
	}

	API struct {
		Dev      bool `envconfig:"DEV" default:"false"`
		DB       DB
		HTTP     HTTP
		Telegram Telegram
		Server   Server
		Schedule DailyResetSchedule
	}
)

func (s DailyResetSchedule) TimeLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return nil, fmt.Errorf("load location: %w", err)
	}
	return loc, nil
}

func (s DailyResetSchedule) MustTimeLocation() *time.Location {
	loc, err := s.TimeLocation()
	if err != nil {
		panic(fmt.Sprintf("failed to load location %s: %v", s.Location, err))
	}
	return loc
}

func NewAPI(ctx context.Context) (*API, error) {
	res := &API{}
	if err := envconfig.Process("API", res); err != nil {
		return nil, fmt.Errorf("parse api environment: %w", err)
	}

	if !res.Dev {
		if err := setAPIProdConfig(ctx, res); err != nil {
			return nil, fmt.Errorf("set api prod config: %w", err)
		}
	}

	return validateAPI(res)
}

func validateAPI(conf *API) (*API, error) {
	if conf.DB.Path == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if conf.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if conf.HTTP.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if conf.Schedule.Hour < 0 || conf.Schedule.Hour > 23 {
		return nil, fmt.Errorf("reset hour %d must be in range 0-23", conf.Schedule.Hour)
	}
	if _, err := conf.Schedule.TimeLocation(); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	return conf, nil
}

func setAPIProdConfig(ctx context.Context, target *API) error {
	parameters, err := FetchAWSParams(ctx,
		"/wordforge/prod/telegram-token",
		"/wordforge/prod/jwt-secret",
		"/wordforge/prod/db-path",
	)
	if err != nil {
		return fmt.Errorf("get parameters: %w", err)
	}

	for name, value := range parameters {
		switch name {
		case "/wordforge/prod/telegram-token":
			target.Telegram.Token = value
		case "/wordforge/prod/jwt-secret":
			target.HTTP.JWT.Secret = value
		case "/wordforge/prod/db-path":
			target.DB.Path = value
		}
	}

	return nil
}
