package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"coffeeshop/internal/adapters/out/journal"
	"coffeeshop/internal/adapters/out/rabbitmq"
	"coffeeshop/internal/adapters/out/redisbus"
	"coffeeshop/internal/jobs"
)

const (
	defaultHTTPPort    = "8080"
	defaultJournalDSN  = "file::memory:?cache=shared"
	defaultRateLimit   = 20
	defaultSinkTimeout = 2 * time.Second
)

// Config holds the settings read from the environment. Empty optional
// addresses switch the matching sink off.
type Config struct {
	HTTPPort string
	MenuFile string

	JournalDriver string
	JournalDSN    string

	RedisAddr    string
	RedisChannel string

	AMQPURL      string
	AMQPExchange string

	// SinkTimeout bounds each network sink call; zero means no bound.
	SinkTimeout time.Duration

	ReportSchedule string
	RateLimit      float64
	LogLevel       slog.Level
}

// ConfigFromEnv builds a Config from lookup, normally os.LookupEnv, applying
// defaults for unset keys.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:       get("HTTP_PORT", defaultHTTPPort),
		MenuFile:       get("MENU_FILE", ""),
		JournalDriver:  strings.ToLower(get("JOURNAL_DRIVER", "")),
		JournalDSN:     get("JOURNAL_DSN", defaultJournalDSN),
		RedisAddr:      get("REDIS_ADDR", ""),
		RedisChannel:   get("REDIS_CHANNEL", redisbus.DefaultChannel),
		AMQPURL:        get("AMQP_URL", ""),
		AMQPExchange:   get("AMQP_EXCHANGE", rabbitmq.DefaultExchange),
		ReportSchedule: get("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
		RateLimit:      defaultRateLimit,
		SinkTimeout:    defaultSinkTimeout,
	}

	if raw := get("RATE_LIMIT", ""); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT must be a non-negative number, got %q", raw)
		}
		cfg.RateLimit = limit
	}

	if raw := get("SINK_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			return Config{}, fmt.Errorf("SINK_TIMEOUT must be a non-negative duration, got %q", raw)
		}
		cfg.SinkTimeout = timeout
	}

	if raw := get("LOG_LEVEL", ""); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	switch cfg.JournalDriver {
	case "", journal.DriverSQLite, journal.DriverPostgres, journal.DriverMySQL:
	default:
		return Config{}, fmt.Errorf("JOURNAL_DRIVER: %w: %q", journal.ErrUnsupportedDriver, cfg.JournalDriver)
	}

	return cfg, nil
}

// LoadConfig reads the process environment.
func LoadConfig() (Config, error) {
	return ConfigFromEnv(os.LookupEnv)
}
