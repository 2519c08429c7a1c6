// Package wrapper defines the capability set every chat platform
// implementation exposes, together with the error kinds they return.
package wrapper

import (
	"context"
	"net/http"
)

// HTTPClient abstracts the http.Client Do method. Callers configure auth,
// cookies and timeouts on it; wrappers only ever call Do.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Section is one selectable group of menu rows.
type Section interface {
	// Render returns the section in the shape the platform API expects.
	Render() any
}

// Wrapper is the messaging surface of a chat platform. Each operation
// performs a single blocking request.
type Wrapper interface {
	// SendMessage sends plain text and returns the message ID.
	SendMessage(ctx context.Context, user, message string, opts ...SendOption) (string, error)

	// SendMenu sends an interactive list with a button that opens the
	// sections and returns the message ID.
	SendMenu(ctx context.Context, user, message, buttonText string, sections []Section, opts ...SendOption) (string, error)

	// SendInteractiveMessage is reserved for future interactive formats.
	SendInteractiveMessage(ctx context.Context, user, message string, sections []Section, opts ...SendOption) (string, error)

	// SendFile sends a remotely hosted file and returns the message ID.
	SendFile(ctx context.Context, user, fileURL string, fileType FileType) (string, error)

	// ReplyToMessage answers messageID with a text message.
	ReplyToMessage(ctx context.Context, user, message, messageID string, opts ...SendOption) error

	// ReactToMessage attaches a unicode emoji to messageID.
	ReactToMessage(ctx context.Context, user, messageID, emoji string) error

	// MarkAsRead marks messageID as read.
	MarkAsRead(ctx context.Context, user, messageID string) error
}
