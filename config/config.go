package config

import (
	"log/slog"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
)

type Config struct {
	Deck     DeckConfig
	Pushover PushoverConfig
}

type DeckConfig struct {
	DBPath     string `env:"DB_PATH"`
	Port       int    `env:"PORT"`
	LogLevel   string `env:"LOG_LEVEL"`
	GatewayURL string `env:"GATEWAY_URL"`
}

type PushoverConfig struct {
	Token     string `env:"PUSHOVER_TOKEN"`
	Recipient string `env:"PUSHOVER_RECIPIENT"`
}

func Load() (Config, error) {
	cfg := Config{
		Deck: DeckConfig{
			DBPath:   "visualdeck.db",
			Port:     8080,
			LogLevel: "info",
		},
	}

	c := config.New()
	c.AddFeeder(feeder.Env{})
	c.AddStruct(&cfg)

	if err := c.Feed(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Deck.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	// default to info if unknown
	slog.With(slog.String("log_level", logLevel)).Info("Received invalid log level. Defaulting to INFO.")
	return slog.LevelInfo
}
