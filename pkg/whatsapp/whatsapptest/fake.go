// Package whatsapptest provides an in-memory stand-in for the Graph API
// messages endpoint, for tests and dry runs.
package whatsapptest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Scenario selects how the fake answers.
type Scenario string

const (
	ScenarioSuccess   Scenario = "success"
	ScenarioAPIError  Scenario = "api_error"
	ScenarioMalformed Scenario = "malformed"
	ScenarioTimeout   Scenario = "timeout"
)

// Option customises the fake at construction time.
type Option func(*Fake)

// WithScenario overrides the default scenario.
func WithScenario(s Scenario) Option {
	return func(f *Fake) {
		f.scenario = s
	}
}

// WithLatency sets the artificial latency inserted before responding.
func WithLatency(d time.Duration) Option {
	return func(f *Fake) {
		if d < 0 {
			d = 0
		}
		f.latency = d
	}
}

// WithAPIError sets the error object returned by ScenarioAPIError.
func WithAPIError(obj map[string]any) Option {
	return func(f *Fake) {
		f.apiError = obj
	}
}

// Request is a request received by the fake.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// JSON decodes the request body.
func (r Request) JSON() (map[string]any, error) {
	var out map[string]any
	err := json.Unmarshal(r.Body, &out)
	return out, err
}

// Fake implements wrapper.HTTPClient without touching the network.
type Fake struct {
	logger   zerolog.Logger
	scenario Scenario
	latency  time.Duration
	apiError map[string]any

	mu       sync.Mutex
	rnd      *rand.Rand
	requests []Request
}

// New constructs a fake that succeeds unless told otherwise.
func New(logger zerolog.Logger, opts ...Option) *Fake {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	f := &Fake{
		logger:   logger,
		scenario: ScenarioSuccess,
		apiError: map[string]any{
			"message": "(#131030) Recipient phone number not in allowed list",
			"type":    "OAuthException",
			"code":    131030,
		},
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Requests returns the requests received so far.
func (f *Fake) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// Do answers req according to the configured scenario.
func (f *Fake) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var body []byte
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("whatsapptest: read request body: %w", err)
		}
		body = data
	}
	f.record(req, body)

	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	switch f.scenario {
	case ScenarioSuccess:
		id := f.generateID()
		f.logger.Info().
			Str("url", req.URL.String()).
			Str("message_id", id).
			RawJSON("payload", jsonOrNull(body)).
			Msg("whatsapptest: request accepted")
		return respond(req, http.StatusOK, map[string]any{
			"messaging_product": "whatsapp",
			"messages":          []map[string]any{{"id": id}},
		}), nil
	case ScenarioAPIError:
		return respond(req, http.StatusBadRequest, map[string]any{"error": f.apiError}), nil
	case ScenarioMalformed:
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       io.NopCloser(strings.NewReader("<html>502 Bad Gateway</html>")),
			Request:    req,
		}, nil
	case ScenarioTimeout:
		<-ctx.Done()
		return nil, ctx.Err()
	default:
		return nil, fmt.Errorf("whatsapptest: unknown scenario %q", f.scenario)
	}
}

func (f *Fake) record(req *http.Request, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})
}

func (f *Fake) wait(ctx context.Context) error {
	if f.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(f.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (f *Fake) generateID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("wamid.TEST%016X", f.rnd.Uint64())
}

func respond(req *http.Request, status int, v any) *http.Response {
	data, _ := json.Marshal(v)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(data)),
		Request:    req,
	}
}

func jsonOrNull(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	return []byte("null")
}
