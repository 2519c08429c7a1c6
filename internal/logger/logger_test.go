package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/meta-wrappers/internal/config"
	"github.com/example/meta-wrappers/internal/logger"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"Warn":     zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}

	for input, want := range cases {
		input := input
		want := want
		t.Run("level_"+input, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := logger.New(config.AppConfig{Env: "production", LogLevel: input}, &buf)
			if err != nil {
				t.Fatalf("New returned error for level %q: %v", input, err)
			}
			if got := log.GetLevel(); got != want {
				t.Fatalf("level = %s, want %s", got, want)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := logger.New(config.AppConfig{LogLevel: "not-a-level"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(config.AppConfig{Env: "production", LogLevel: "info"}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info().Str("platform", "whatsapp").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["platform"] != "whatsapp" || entry["app"] != "metawrap" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %v", entry)
	}
}
