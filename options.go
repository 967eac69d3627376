package evmerrors

// Option configures an Error at construction time.
type Option func(*errorConfig)

// errorConfig holds the inputs New derives an Error from.
type errorConfig struct {
	cause        Cause
	details      string
	metaMessages []string
	docsBaseURL  string
	docsPath     string
	docsSlug     string
	code         Code
	codeSet      bool
	data         any
	revert       *RevertResult
	call         *CallContext
}

// defaultErrorConfig returns the configuration used when no options are given.
func defaultErrorConfig() *errorConfig {
	return &errorConfig{
		docsBaseURL: DefaultDocsBaseURL,
	}
}

// WithCause wraps err. An *Error cause contributes its details, docs path and
// code; any other error contributes its message as details.
func WithCause(err error) Option {
	return func(c *errorConfig) {
		c.cause = causeFromError(err)
	}
}

// WithOpaqueCause wraps a value that is not an error, such as a decoded
// JSON-RPC error object.
func WithOpaqueCause(v any) Option {
	return func(c *errorConfig) {
		c.cause = causeFromValue(v)
	}
}

// WithDetails sets the details used when the cause provides none.
func WithDetails(details string) Option {
	return func(c *errorConfig) {
		c.details = details
	}
}

// WithMetaMessages appends context lines rendered below the short message.
func WithMetaMessages(lines ...string) Option {
	return func(c *errorConfig) {
		c.metaMessages = append(c.metaMessages, lines...)
	}
}

// WithDocsBaseURL overrides DefaultDocsBaseURL.
func WithDocsBaseURL(url string) Option {
	return func(c *errorConfig) {
		c.docsBaseURL = url
	}
}

// WithDocsPath sets the documentation path. A docs path inherited from an
// *Error cause takes precedence.
func WithDocsPath(path string) Option {
	return func(c *errorConfig) {
		c.docsPath = path
	}
}

// WithDocsSlug sets the anchor appended to the documentation URL.
func WithDocsSlug(slug string) Option {
	return func(c *errorConfig) {
		c.docsSlug = slug
	}
}

// WithCode sets the code explicitly, overriding both the cause's code and
// the default for the tag.
func WithCode(code Code) Option {
	return func(c *errorConfig) {
		c.code = code
		c.codeSet = true
	}
}

// WithData attaches JSON-RPC error data, returned by ErrorData.
func WithData(data any) Option {
	return func(c *errorConfig) {
		c.data = data
	}
}

func withRevert(r *RevertResult) Option {
	return func(c *errorConfig) {
		c.revert = r
	}
}

func withCall(call *CallContext) Option {
	return func(c *errorConfig) {
		c.call = call
	}
}
