package wrapper_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/meta-wrappers/pkg/wrapper"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want wrapper.Kind
	}{
		{name: "nil", err: nil, want: wrapper.KindNone},
		{name: "api", err: wrapper.NewAPIError([]byte(`{"code":1}`)), want: wrapper.KindAPI},
		{name: "wrapped api", err: fmt.Errorf("send: %w", wrapper.NewAPIError([]byte(`"x"`))), want: wrapper.KindAPI},
		{name: "validation", err: wrapper.ValidateFileType("gif"), want: wrapper.KindValidation},
		{name: "not implemented", err: fmt.Errorf("whatsapp: %w", wrapper.ErrNotImplemented), want: wrapper.KindNotImplemented},
		{name: "malformed", err: fmt.Errorf("whatsapp: %w", wrapper.ErrMalformedResponse), want: wrapper.KindTransport},
		{name: "context", err: context.DeadlineExceeded, want: wrapper.KindTransport},
		{name: "other", err: errors.New("connection refused"), want: wrapper.KindTransport},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := wrapper.Classify(tc.err); got != tc.want {
				t.Fatalf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
