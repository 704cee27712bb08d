package config

import (
	"log/slog"
	"time"

	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the application configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	Tickets  Tickets    `mapstructure:",squash"`
	Analysis Analysis   `mapstructure:",squash"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
}

// Tickets describes the input document and the route being analysed.
// Layouts use Go reference time notation.
type Tickets struct {
	StartField  string `mapstructure:"TICKETS_START_FIELD"`
	DateLayout  string `mapstructure:"TICKETS_DATE_LAYOUT"`
	TimeLayout  string `mapstructure:"TICKETS_TIME_LAYOUT"`
	Origin      string `mapstructure:"TICKETS_ORIGIN"`
	Destination string `mapstructure:"TICKETS_DESTINATION"`
	// DataDir confines the files the HTTP API may open.
	DataDir string `mapstructure:"TICKETS_DATA_DIR"`
}

type Analysis struct {
	CacheExpiration time.Duration `mapstructure:"ANALYSIS_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"ANALYSIS_LOCK_TIMEOUT"`
	RateLimitRPS    int           `mapstructure:"ANALYSIS_RATE_LIMIT"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Settings resolves the ticket section into the immutable value handed to the
// reader and the statistics engine.
func (c Config) Settings() ticket.Settings {
	return ticket.Settings{
		StartField:  c.Tickets.StartField,
		DateLayout:  c.Tickets.DateLayout,
		TimeLayout:  c.Tickets.TimeLayout,
		Origin:      c.Tickets.Origin,
		Destination: c.Tickets.Destination,
	}
}
