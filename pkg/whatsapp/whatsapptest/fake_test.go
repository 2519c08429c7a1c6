package whatsapptest_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/meta-wrappers/pkg/whatsapp"
	"github.com/example/meta-wrappers/pkg/whatsapp/whatsapptest"
	"github.com/example/meta-wrappers/pkg/wrapper"
)

func newClient(t *testing.T, fake *whatsapptest.Fake) *whatsapp.Client {
	t.Helper()
	client, err := whatsapp.New(fake, "1234")
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return client
}

func TestFakeSuccess(t *testing.T) {
	fake := whatsapptest.New(zerolog.Nop())
	client := newClient(t, fake)

	id, err := client.SendMessage(context.Background(), "15551234567", "hello")
	if err != nil {
		t.Fatalf("unexpected send error: %v", err)
	}
	if !strings.HasPrefix(id, "wamid.TEST") {
		t.Fatalf("unexpected message id %s", id)
	}

	reqs := fake.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(reqs))
	}
	if reqs[0].URL != "https://graph.facebook.com/v15.0/1234/messages" {
		t.Fatalf("url = %s", reqs[0].URL)
	}
	body, err := reqs[0].JSON()
	if err != nil {
		t.Fatalf("request body: %v", err)
	}
	if body["to"] != "15551234567" || body["messaging_product"] != "whatsapp" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestFakeAPIError(t *testing.T) {
	fake := whatsapptest.New(zerolog.Nop(),
		whatsapptest.WithScenario(whatsapptest.ScenarioAPIError),
		whatsapptest.WithAPIError(map[string]any{"code": 131, "message": "x"}))
	client := newClient(t, fake)

	err := client.ReactToMessage(context.Background(), "1555", "wamid.X", "👍")
	var apiErr *wrapper.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if string(apiErr.Raw) != `{"code":131,"message":"x"}` {
		t.Fatalf("raw = %s", apiErr.Raw)
	}
}

func TestFakeMalformed(t *testing.T) {
	fake := whatsapptest.New(zerolog.Nop(), whatsapptest.WithScenario(whatsapptest.ScenarioMalformed))
	client := newClient(t, fake)

	if err := client.MarkAsRead(context.Background(), "1555", "wamid.X"); !errors.Is(err, wrapper.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFakeTimeoutHonoursContext(t *testing.T) {
	fake := whatsapptest.New(zerolog.Nop(), whatsapptest.WithScenario(whatsapptest.ScenarioTimeout))
	client := newClient(t, fake)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.SendMessage(ctx, "1555", "hi"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestFakeLatencyRespectsCancellation(t *testing.T) {
	fake := whatsapptest.New(zerolog.Nop(), whatsapptest.WithLatency(time.Second))
	client := newClient(t, fake)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := client.SendMessage(ctx, "1555", "hi"); err == nil {
		t.Fatalf("expected cancellation error")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("latency ignored cancellation")
	}
}
