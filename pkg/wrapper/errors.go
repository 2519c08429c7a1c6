package wrapper

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by operations a platform does not support.
	ErrNotImplemented = errors.New("not implemented")
	// ErrInvalidFileType marks a file type outside FileTypes.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrMalformedResponse indicates the response body was not valid JSON.
	ErrMalformedResponse = errors.New("malformed response body")
	// ErrMissingMessageID indicates a successful response without messages[0].id.
	ErrMissingMessageID = errors.New("response has no message id")
)

// APIError carries the "error" value returned by the remote API. Raw holds
// the bytes exactly as received; Object is the same value decoded.
type APIError struct {
	Raw    json.RawMessage
	Object any
}

// NewAPIError decodes raw into an APIError. raw must be valid JSON.
func NewAPIError(raw []byte) *APIError {
	e := &APIError{Raw: append(json.RawMessage(nil), raw...)}
	if err := json.Unmarshal(raw, &e.Object); err != nil {
		e.Object = string(raw)
	}
	return e
}

func (e *APIError) Error() string {
	return "api error: " + string(e.Raw)
}

// ValidationError reports an argument rejected before any request was made.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q is not one of %s", e.Field, e.Value, joinAllowed(e.Allowed))
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
