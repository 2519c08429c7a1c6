// Package whatsapp implements wrapper.Wrapper on top of the WhatsApp Business
// Cloud API messages endpoint.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/rs/zerolog"

	"github.com/example/meta-wrappers/pkg/wrapper"
)

const (
	// DefaultBaseURL is the Graph API host.
	DefaultBaseURL = "https://graph.facebook.com"
	// APIVersion is the Graph API version the payloads are written against.
	APIVersion = "v15.0"

	defaultBodyLimit int64 = 1 << 20
)

// Option customises the client at construction time.
type Option func(*Client)

// WithBaseURL replaces the Graph API host. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger attaches a logger used to trace outgoing requests.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		if !reflect.ValueOf(logger).IsZero() {
			c.logger = logger
		}
	}
}

// WithBodyLimit adjusts how many bytes are read from a response body.
func WithBodyLimit(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBodyBytes = limit
		}
	}
}

// Client sends messages for a single WhatsApp Business phone number.
type Client struct {
	logger       zerolog.Logger
	httpClient   wrapper.HTTPClient
	baseURL      string
	maxBodyBytes int64
	api          map[string]string
}

var _ wrapper.Wrapper = (*Client)(nil)

// New builds a client for the phone number ID id. The session is used as
// given; New performs no I/O.
func New(session wrapper.HTTPClient, id string, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, errors.New("whatsapp: http client is required")
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("whatsapp: phone number id is required")
	}

	c := &Client{
		logger:       zerolog.Nop(),
		httpClient:   session,
		baseURL:      DefaultBaseURL,
		maxBodyBytes: defaultBodyLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}

	c.api = map[string]string{
		"messages": fmt.Sprintf("%s/%s/%s/messages", c.baseURL, APIVersion, id),
	}
	return c, nil
}

// MessagesURL returns the endpoint every operation posts to.
func (c *Client) MessagesURL() string {
	return c.api["messages"]
}

// SendMessage sends a text message. WithPreviewURL enables link previews.
func (c *Client) SendMessage(ctx context.Context, user, message string, opts ...wrapper.SendOption) (string, error) {
	o := wrapper.ApplySendOptions(opts...)
	payload := TextPayload{
		MessagingProduct: MessagingProduct,
		To:               user,
		Type:             "text",
		Text: TextBody{
			Body:       message,
			PreviewURL: o.PreviewURL,
		},
	}

	body, err := c.post(ctx, "text", payload)
	if err != nil {
		return "", err
	}
	return messageID(body)
}

// SendMenu sends an interactive list message. Header and footer are only
// included when WithHeader or WithFooter supplied a non-empty text.
func (c *Client) SendMenu(ctx context.Context, user, message, buttonText string, sections []wrapper.Section, opts ...wrapper.SendOption) (string, error) {
	o := wrapper.ApplySendOptions(opts...)

	rendered := make([]any, 0, len(sections))
	for i, section := range sections {
		if section == nil {
			return "", fmt.Errorf("whatsapp: section %d is nil", i)
		}
		rendered = append(rendered, section.Render())
	}

	payload := ListPayload{
		MessagingProduct: MessagingProduct,
		To:               user,
		Type:             "interactive",
		Interactive: ListInteractive{
			Type: "list",
			Action: ListAction{
				Button:   buttonText,
				Sections: rendered,
			},
			Body: ListBody{Text: message},
		},
	}
	if o.Header != "" {
		payload.Interactive.Header = &TextCaption{Type: "text", Text: o.Header}
	}
	if o.Footer != "" {
		payload.Interactive.Footer = &TextCaption{Type: "text", Text: o.Footer}
	}

	body, err := c.post(ctx, "interactive", payload)
	if err != nil {
		return "", err
	}
	return messageID(body)
}

// SendInteractiveMessage is not supported by this client.
func (c *Client) SendInteractiveMessage(ctx context.Context, user, message string, sections []wrapper.Section, opts ...wrapper.SendOption) (string, error) {
	return "", fmt.Errorf("whatsapp: send interactive message: %w", wrapper.ErrNotImplemented)
}

// SendFile sends the file at fileURL. fileType is validated before anything
// is sent.
func (c *Client) SendFile(ctx context.Context, user, fileURL string, fileType wrapper.FileType) (string, error) {
	if err := wrapper.ValidateFileType(fileType); err != nil {
		return "", err
	}

	payload := MediaPayload{
		MessagingProduct: MessagingProduct,
		To:               user,
		Type:             string(fileType),
	}
	link := &MediaLink{Link: fileURL}
	switch fileType {
	case wrapper.FileTypeAudio:
		payload.Audio = link
	case wrapper.FileTypeDocument:
		payload.Document = link
	case wrapper.FileTypeImage:
		payload.Image = link
	case wrapper.FileTypeSticker:
		payload.Sticker = link
	case wrapper.FileTypeVideo:
		payload.Video = link
	}

	// The API accepts the link before fetching it, so a bad URL still yields
	// a message ID here.
	body, err := c.post(ctx, string(fileType), payload)
	if err != nil {
		return "", err
	}
	return messageID(body)
}

// ReplyToMessage sends message as a reply to messageID.
func (c *Client) ReplyToMessage(ctx context.Context, user, message, messageID string, opts ...wrapper.SendOption) error {
	o := wrapper.ApplySendOptions(opts...)
	payload := ReplyPayload{
		MessagingProduct: MessagingProduct,
		Context: ReplyContext{
			MessageID:  messageID,
			PreviewURL: o.PreviewURL,
		},
		To:   user,
		Type: "text",
		Text: ReplyText{Body: message},
	}

	_, err := c.post(ctx, "reply", payload)
	return err
}

// ReactToMessage reacts to messageID with emoji.
func (c *Client) ReactToMessage(ctx context.Context, user, messageID, emoji string) error {
	payload := ReactionPayload{
		MessagingProduct: MessagingProduct,
		To:               user,
		Type:             "reaction",
		Reaction: Reaction{
			MessageID: messageID,
			Emoji:     emoji,
		},
	}

	_, err := c.post(ctx, "reaction", payload)
	return err
}

// MarkAsRead marks messageID as read. user is not part of the request.
func (c *Client) MarkAsRead(ctx context.Context, user, messageID string) error {
	payload := ReadPayload{
		MessagingProduct: MessagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}

	_, err := c.post(ctx, "read", payload)
	return err
}

// post sends payload to the messages endpoint and returns the response body.
// A top level "error" key turns into a *wrapper.APIError.
func (c *Client) post(ctx context.Context, kind string, payload any) ([]byte, error) {
	data, err := encode(payload)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: encode %s payload: %w", kind, err)
	}

	endpoint := c.api["messages"]
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("whatsapp: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: http do: %w", err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("kind", kind).
		Int("http_status", resp.StatusCode).
		Int("response_bytes", len(body)).
		Msg("whatsapp request completed")

	if !json.Valid(body) {
		return nil, fmt.Errorf("whatsapp: http %d: %w", resp.StatusCode, wrapper.ErrMalformedResponse)
	}
	if apiErr := extractError(body); apiErr != nil {
		return nil, apiErr
	}
	return body, nil
}

func (c *Client) readBody(rc io.ReadCloser) ([]byte, error) {
	if rc == nil {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(rc, c.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("whatsapp: read body: %w", err)
	}
	return data, nil
}

func encode(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func extractError(body []byte) *wrapper.APIError {
	value, dataType, _, err := jsonparser.Get(body, "error")
	if err != nil {
		return nil
	}
	if dataType == jsonparser.String {
		// jsonparser strips the quotes of string values.
		unescaped, err := jsonparser.ParseString(value)
		if err != nil {
			unescaped = string(value)
		}
		quoted, _ := json.Marshal(unescaped)
		return wrapper.NewAPIError(quoted)
	}
	return wrapper.NewAPIError(value)
}

func messageID(body []byte) (string, error) {
	id, err := jsonparser.GetString(body, "messages", "[0]", "id")
	if err != nil {
		return "", fmt.Errorf("whatsapp: %w", wrapper.ErrMissingMessageID)
	}
	return id, nil
}
