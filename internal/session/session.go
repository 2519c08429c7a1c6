// Package session builds the HTTP transport handed to the wrappers: a client
// that authenticates every request with a bearer token.
package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// New returns an *http.Client that sends token as a bearer credential and
// gives up after timeout. A zero timeout disables the deadline. base, when
// non-nil, is used for the underlying round trips.
func New(token string, timeout time.Duration, base *http.Client) (*http.Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("session: access token is required")
	}
	if timeout < 0 {
		return nil, errors.New("session: timeout must not be negative")
	}

	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})

	client := oauth2.NewClient(ctx, src)
	client.Timeout = timeout
	return client, nil
}
