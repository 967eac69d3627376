package evmerrors

import (
	"encoding/json"
	"errors"
	"strings"
)

// DefaultDocsBaseURL is prefixed to documentation paths unless overridden
// with WithDocsBaseURL.
const DefaultDocsBaseURL = "https://tevm.sh"

// DefaultShortMessage is used when neither the caller nor the tag catalog
// supplies a short message.
const DefaultShortMessage = "An error occurred."

// Version is rendered on the last line of every error message. It can be set
// at build time with -ldflags "-X github.com/branched-services/go-evmerrors.Version=...".
var Version = "go-evmerrors@v0.1.0"

// ErrUntagged is the panic value of New when called without a tag.
var ErrUntagged = errors.New("evmerrors: error tag must not be empty")

// Error is the root error type. Every kind is an *Error distinguished by its
// Tag; all fields are derived in New and never change afterwards.
type Error struct {
	tag          Tag
	code         Code
	shortMessage string
	metaMessages []string
	docsBaseURL  string
	docsPath     string
	docsSlug     string
	details      string
	cause        Cause
	message      string
	version      string
	data         any
	revert       *RevertResult
	call         *CallContext
}

// New builds an error of the given kind. An empty shortMessage falls back to
// the tag's default message and then to DefaultShortMessage.
//
// New panics with ErrUntagged if tag is empty.
func New(tag Tag, shortMessage string, opts ...Option) *Error {
	if tag == "" {
		panic(ErrUntagged)
	}

	cfg := defaultErrorConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if shortMessage == "" {
		shortMessage = tag.DefaultMessage()
	}
	if shortMessage == "" {
		shortMessage = DefaultShortMessage
	}

	e := &Error{
		tag:          tag,
		shortMessage: shortMessage,
		metaMessages: cfg.metaMessages,
		docsBaseURL:  cfg.docsBaseURL,
		docsSlug:     cfg.docsSlug,
		cause:        cfg.cause,
		version:      Version,
		data:         cfg.data,
		revert:       cfg.revert,
		call:         cfg.call,
	}

	e.details = cfg.cause.details(cfg.details)
	e.docsPath = resolveDocsPath(tag, cfg)
	e.code = resolveCode(tag, cfg)
	e.message = e.render()

	return e
}

func resolveDocsPath(tag Tag, cfg *errorConfig) string {
	if known := cfg.cause.Known(); known != nil && known.docsPath != "" {
		return known.docsPath
	}
	if cfg.docsPath != "" {
		return cfg.docsPath
	}
	return tag.DocsPath()
}

func resolveCode(tag Tag, cfg *errorConfig) Code {
	if cfg.codeSet {
		return cfg.code
	}
	if known := cfg.cause.Known(); known != nil && known.code != CodeNone {
		return known.code
	}
	return tag.DefaultCode()
}

// render lays out the final message. Tooling parses this layout, so the line
// order is fixed.
func (e *Error) render() string {
	lines := make([]string, 0, len(e.metaMessages)+6)
	lines = append(lines, e.shortMessage, "")

	if len(e.metaMessages) > 0 {
		lines = append(lines, e.metaMessages...)
		lines = append(lines, "")
	}
	if url := e.DocsURL(); url != "" {
		lines = append(lines, "Docs: "+url)
	}
	if e.details != "" {
		lines = append(lines, "Details: "+e.details)
	}
	lines = append(lines, "Version: "+e.version)

	return strings.Join(lines, "\n")
}

// Error returns the rendered message.
func (e *Error) Error() string {
	return e.message
}

// Message returns the rendered message. It is the same string as Error.
func (e *Error) Message() string {
	return e.message
}

// Tag returns the kind discriminant.
func (e *Error) Tag() Tag {
	return e.tag
}

// Code returns the numeric classification.
func (e *Error) Code() Code {
	return e.code
}

// ShortMessage returns the headline without meta messages, docs or details.
func (e *Error) ShortMessage() string {
	return e.shortMessage
}

// MetaMessages returns a copy of the context lines.
func (e *Error) MetaMessages() []string {
	if len(e.metaMessages) == 0 {
		return nil
	}
	out := make([]string, len(e.metaMessages))
	copy(out, e.metaMessages)
	return out
}

// DocsBaseURL returns the documentation base URL.
func (e *Error) DocsBaseURL() string {
	return e.docsBaseURL
}

// DocsPath returns the resolved documentation path.
func (e *Error) DocsPath() string {
	return e.docsPath
}

// DocsSlug returns the documentation anchor.
func (e *Error) DocsSlug() string {
	return e.docsSlug
}

// DocsURL returns the full documentation link, or "" when no docs path was
// resolved.
func (e *Error) DocsURL() string {
	if e.docsPath == "" {
		return ""
	}
	url := e.docsBaseURL + e.docsPath
	if e.docsSlug != "" {
		url += "#" + e.docsSlug
	}
	return url
}

// Details returns the text derived from the cause.
func (e *Error) Details() string {
	return e.details
}

// Cause returns the wrapped cause.
func (e *Error) Cause() Cause {
	return e.cause
}

// Version returns the version tag rendered in the message.
func (e *Error) Version() string {
	return e.version
}

// Data returns the JSON-RPC error data attached with WithData.
func (e *Error) Data() any {
	return e.data
}

// Revert returns the decoded revert payload of a ContractFunctionRevertedError.
func (e *Error) Revert() *RevertResult {
	return e.revert
}

// Call returns the call context of a ContractFunctionExecutionError.
func (e *Error) Call() *CallContext {
	return e.call
}

// Unwrap returns the cause when it is an error.
func (e *Error) Unwrap() error {
	return e.cause.Err()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.tag == t.tag
}

// ErrorCode implements go-ethereum's rpc.Error.
func (e *Error) ErrorCode() int {
	return int(e.code)
}

// ErrorData implements go-ethereum's rpc.DataError.
func (e *Error) ErrorData() interface{} {
	return e.data
}

// Walk searches the cause chain. With a nil fn it returns e itself.
// Otherwise it returns the first error, starting with e, for which fn
// returns true, or nil if there is none.
func (e *Error) Walk(fn func(error) bool) error {
	if fn == nil {
		return e
	}
	return Walk(e, fn)
}

// Walk is the package-level form of (*Error).Walk and accepts any error.
// Foreign errors are followed through errors.Unwrap; opaque causes end the
// chain. The search is iterative, so chain depth is not bounded by the stack.
func Walk(err error, fn func(error) bool) error {
	if fn == nil {
		return err
	}
	for cur := err; cur != nil; cur = next(cur) {
		if fn(cur) {
			return cur
		}
	}
	return nil
}

func next(err error) error {
	if e, ok := err.(*Error); ok {
		if e == nil {
			return nil
		}
		return e.cause.Err()
	}
	return errors.Unwrap(err)
}

// FindTag returns the first *Error in err's chain with the given tag.
func FindTag(err error, tag Tag) *Error {
	found := Walk(err, func(cur error) bool {
		e, ok := cur.(*Error)
		return ok && e != nil && e.tag == tag
	})
	if found == nil {
		return nil
	}
	return found.(*Error)
}

// HasTag reports whether any error in err's chain has the given tag.
func HasTag(err error, tag Tag) bool {
	return FindTag(err, tag) != nil
}

// jsonError is the wire form produced by MarshalJSON.
type jsonError struct {
	Tag          Tag             `json:"_tag"`
	Name         Tag             `json:"name"`
	Code         Code            `json:"code"`
	ShortMessage string          `json:"shortMessage"`
	MetaMessages []string        `json:"metaMessages,omitempty"`
	DocsPath     string          `json:"docsPath,omitempty"`
	Details      string          `json:"details,omitempty"`
	Message      string          `json:"message"`
	Version      string          `json:"version"`
	Data         any             `json:"data,omitempty"`
	Cause        json.RawMessage `json:"cause,omitempty"`
}

// MarshalJSON encodes the error with its cause chain. Foreign causes are
// encoded as {"message": ...}.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := jsonError{
		Tag:          e.tag,
		Name:         e.tag,
		Code:         e.code,
		ShortMessage: e.shortMessage,
		MetaMessages: e.metaMessages,
		DocsPath:     e.docsPath,
		Details:      e.details,
		Message:      e.message,
		Version:      e.version,
		Data:         e.data,
	}

	var (
		cause []byte
		err   error
	)
	switch e.cause.kind {
	case CauseKnown:
		cause, err = e.cause.known.MarshalJSON()
	case CauseNative:
		cause, err = json.Marshal(map[string]string{"message": e.cause.native.Error()})
	case CauseOpaque:
		cause, err = json.Marshal(stringifyOpaque(e.cause.opaque))
	}
	if err != nil {
		return nil, err
	}
	out.Cause = cause

	return json.Marshal(out)
}
