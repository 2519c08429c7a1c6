package wrapper

import (
	"errors"
)

// Kind groups errors by how a caller would recover from them.
type Kind string

const (
	KindNone           Kind = ""
	KindAPI            Kind = "api"
	KindValidation     Kind = "validation"
	KindNotImplemented Kind = "not_implemented"
	KindTransport      Kind = "transport"
)

// Classify reports the kind of err. Errors that are not an APIError,
// a ValidationError or ErrNotImplemented are treated as transport failures.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindAPI
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}
	if errors.Is(err, ErrNotImplemented) {
		return KindNotImplemented
	}
	return KindTransport
}
