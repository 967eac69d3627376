package evmerrors

import (
	"encoding/json"
	"fmt"
)

// unparsableDetails is used when an opaque cause cannot be rendered.
const unparsableDetails = "Unable to parse error details"

// CauseKind identifies which variant a Cause holds.
type CauseKind uint8

const (
	// CauseNone means the error has no cause.
	CauseNone CauseKind = iota

	// CauseKnown holds another *Error.
	CauseKnown

	// CauseNative holds any other Go error.
	CauseNative

	// CauseOpaque holds a value that is not an error.
	CauseOpaque
)

func (k CauseKind) String() string {
	switch k {
	case CauseKnown:
		return "known"
	case CauseNative:
		return "native"
	case CauseOpaque:
		return "opaque"
	default:
		return "none"
	}
}

// Cause is the lower-level failure an Error wraps. The variant is fixed when
// the error is constructed.
type Cause struct {
	kind   CauseKind
	known  *Error
	native error
	opaque any
}

// typedError is implemented by foreign errors that carry their own discriminant.
type typedError interface {
	ErrorType() string
}

func causeFromError(err error) Cause {
	if err == nil {
		return Cause{}
	}
	if known, ok := err.(*Error); ok {
		if known == nil {
			return Cause{}
		}
		return Cause{kind: CauseKnown, known: known}
	}
	return Cause{kind: CauseNative, native: err}
}

func causeFromValue(v any) Cause {
	switch v := v.(type) {
	case nil:
		return Cause{}
	case error:
		return causeFromError(v)
	default:
		return Cause{kind: CauseOpaque, opaque: v}
	}
}

// Kind returns the variant held by c.
func (c Cause) Kind() CauseKind {
	return c.kind
}

// Known returns the wrapped *Error, or nil for other variants.
func (c Cause) Known() *Error {
	return c.known
}

// Native returns the wrapped foreign error, or nil for other variants.
func (c Cause) Native() error {
	return c.native
}

// Opaque returns the wrapped non-error value, or nil for other variants.
func (c Cause) Opaque() any {
	return c.opaque
}

// Err returns the cause as an error. Opaque causes have no error form and
// yield nil.
func (c Cause) Err() error {
	switch c.kind {
	case CauseKnown:
		return c.known
	case CauseNative:
		return c.native
	default:
		return nil
	}
}

// details derives the "Details:" text contributed by the cause. fallback is
// the caller-supplied details.
func (c Cause) details(fallback string) string {
	switch c.kind {
	case CauseKnown:
		if c.known.details != "" {
			return c.known.details
		}
		return fallback
	case CauseNative:
		if typed, ok := c.native.(typedError); ok && typed.ErrorType() != "" {
			return typed.ErrorType()
		}
		return c.native.Error()
	case CauseOpaque:
		if fallback != "" {
			return fallback
		}
		return stringifyOpaque(c.opaque)
	default:
		return fallback
	}
}

// stringifyOpaque never panics; values that cannot be encoded collapse to a
// fixed literal.
func stringifyOpaque(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = unparsableDetails
		}
	}()

	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return unparsableDetails
	}
	return string(raw)
}
