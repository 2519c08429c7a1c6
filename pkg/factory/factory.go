// Package factory resolves a platform name to a wrapper implementation.
package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/meta-wrappers/pkg/whatsapp"
	"github.com/example/meta-wrappers/pkg/wrapper"
)

// ErrUnknownPlatform is returned for platform names with no implementation.
var ErrUnknownPlatform = errors.New("unknown platform")

// Constructor builds a wrapper from a transport session and an account ID.
type Constructor func(session wrapper.HTTPClient, id string, cfg Config) (wrapper.Wrapper, error)

// Config carries the optional settings shared by every constructor.
type Config struct {
	Logger  zerolog.Logger
	BaseURL string
}

var wrappers = map[string]Constructor{
	"whatsapp": newWhatsApp,
}

// Platforms returns the registered platform names, sorted.
func Platforms() []string {
	names := make([]string, 0, len(wrappers))
	for name := range wrappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the constructor registered under platform.
func Lookup(platform string) (Constructor, bool) {
	ctor, ok := wrappers[normalize(platform)]
	return ctor, ok
}

// New constructs the wrapper registered under platform.
func New(platform string, session wrapper.HTTPClient, id string, cfg Config) (wrapper.Wrapper, error) {
	if reflect.ValueOf(cfg.Logger).IsZero() {
		cfg.Logger = zerolog.Nop()
	}
	ctor, ok := Lookup(platform)
	if !ok {
		return nil, fmt.Errorf("factory: %w %q (supported: %s)", ErrUnknownPlatform, platform, strings.Join(Platforms(), ", "))
	}
	w, err := ctor(session, id, cfg)
	if err != nil {
		return nil, fmt.Errorf("factory: %s wrapper init: %w", normalize(platform), err)
	}
	cfg.Logger.Info().
		Str("platform", normalize(platform)).
		Msg("wrapper initialised")
	return w, nil
}

func newWhatsApp(session wrapper.HTTPClient, id string, cfg Config) (wrapper.Wrapper, error) {
	opts := []whatsapp.Option{whatsapp.WithLogger(cfg.Logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, whatsapp.WithBaseURL(cfg.BaseURL))
	}
	return whatsapp.New(session, id, opts...)
}

func normalize(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
