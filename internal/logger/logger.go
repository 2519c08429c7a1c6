package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/meta-wrappers/internal/config"
)

const consoleTimeFormat = "15:04:05"

// New builds the CLI logger. Development environments get console output on
// stderr so stdout stays free for command results; other environments emit
// JSON. Passing writers overrides the destination.
func New(cfg config.AppConfig, writers ...io.Writer) (zerolog.Logger, error) {
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.DurationFieldUnit = time.Millisecond

	var output io.Writer
	switch {
	case len(writers) > 0:
		output = io.MultiWriter(writers...)
	case isDevelopment(cfg.Env):
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
	default:
		output = os.Stderr
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Str("app", "metawrap").
		Logger().
		Level(lvl), nil
}

func isDevelopment(env string) bool {
	return strings.EqualFold(env, "development") || strings.EqualFold(env, "dev")
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}
