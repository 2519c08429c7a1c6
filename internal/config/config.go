package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures the runtime configuration of the metawrap CLI. The wrapper
// packages themselves read no environment.
type Config struct {
	App     AppConfig
	Meta    MetaConfig
	Timeout TimeoutConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// MetaConfig identifies the account messages are sent from.
type MetaConfig struct {
	Platform    string
	AccountID   string
	AccessToken string
	BaseURL     string
	PreviewURL  bool
}

// TimeoutConfig holds the HTTP timeout applied to the session.
type TimeoutConfig struct {
	HTTPTimeoutSeconds int
}

// Load reads environment variables (and a .env file when present), applies
// defaults, validates required values and returns a populated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development", false)
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info", false)

	cfg.Meta.Platform = strings.ToLower(ldr.getString("META_PLATFORM", "whatsapp", false))
	cfg.Meta.AccountID = ldr.getString("META_ACCOUNT_ID", "", true)
	cfg.Meta.AccessToken = ldr.getString("META_ACCESS_TOKEN", "", true)
	cfg.Meta.BaseURL = ldr.getString("GRAPH_BASE_URL", "", false)
	cfg.Meta.PreviewURL = ldr.getBool("META_PREVIEW_URL", false, false)

	cfg.Timeout.HTTPTimeoutSeconds = ldr.getInt("HTTP_TIMEOUT_SECONDS", 30, false)
	if cfg.Timeout.HTTPTimeoutSeconds < 0 {
		ldr.addError("HTTP_TIMEOUT_SECONDS must not be negative")
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) lookup(key string, required bool) (string, bool) {
	val, ok := os.LookupEnv(key)
	val = strings.TrimSpace(val)
	if !ok || val == "" {
		if required {
			l.addError(fmt.Sprintf("%s is required", key))
		}
		return "", false
	}
	return val, true
}

func (l *envLoader) getString(key, def string, required bool) string {
	val, ok := l.lookup(key, required)
	if !ok {
		return def
	}
	return val
}

func (l *envLoader) getInt(key string, def int, required bool) int {
	val, ok := l.lookup(key, required)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		l.addError(fmt.Sprintf("%s must be a valid integer", key))
		return def
	}
	return i
}

func (l *envLoader) getBool(key string, def bool, required bool) bool {
	val, ok := l.lookup(key, required)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		l.addError(fmt.Sprintf("%s must be a valid boolean", key))
		return def
	}
	return parsed
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
