package wrapper

// SendOption customises a single send operation.
type SendOption func(*SendOptions)

// SendOptions holds the optional parts of a message. Implementations resolve
// them with ApplySendOptions.
type SendOptions struct {
	Header     string
	Footer     string
	PreviewURL bool
}

// WithHeader sets the header text of a menu. An empty header is omitted.
func WithHeader(text string) SendOption {
	return func(o *SendOptions) {
		o.Header = text
	}
}

// WithFooter sets the footer text of a menu. An empty footer is omitted.
func WithFooter(text string) SendOption {
	return func(o *SendOptions) {
		o.Footer = text
	}
}

// WithPreviewURL requests a link preview for URLs found in the message.
func WithPreviewURL(enabled bool) SendOption {
	return func(o *SendOptions) {
		o.PreviewURL = enabled
	}
}

// ApplySendOptions folds opts over the zero value.
func ApplySendOptions(opts ...SendOption) SendOptions {
	var o SendOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
