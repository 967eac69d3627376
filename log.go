package evmerrors

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject implements zapcore.ObjectMarshaler. The cause chain is
// encoded as nested "cause" objects.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("tag", string(e.tag))
	enc.AddInt("code", int(e.code))
	enc.AddString("shortMessage", e.shortMessage)
	if url := e.DocsURL(); url != "" {
		enc.AddString("docs", url)
	}
	if e.details != "" {
		enc.AddString("details", e.details)
	}
	if e.revert != nil {
		if e.revert.Reason != "" {
			enc.AddString("reason", e.revert.Reason)
		}
		if e.revert.Signature != "" {
			enc.AddString("signature", e.revert.Signature)
		}
	}

	switch e.cause.kind {
	case CauseKnown:
		return enc.AddObject("cause", e.cause.known)
	case CauseNative:
		enc.AddString("cause", e.cause.native.Error())
	case CauseOpaque:
		enc.AddString("cause", stringifyOpaque(e.cause.opaque))
	}
	return nil
}

// ZapField returns a field for err under the "error" key: a structured
// object for an *Error, zap.Error for anything else.
func ZapField(err error) zap.Field {
	if e, ok := err.(*Error); ok && e != nil {
		return zap.Object("error", e)
	}
	return zap.Error(err)
}

// ZapFields flattens the outermost *Error in err's chain into top-level
// fields, for loggers whose sinks do not handle nested objects well.
func ZapFields(err error) []zap.Field {
	e := From(err)
	if e == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String("tag", string(e.tag)),
		zap.Int("code", int(e.code)),
		zap.String("code_description", e.code.String()),
		zap.String("short_message", e.shortMessage),
	}
	if url := e.DocsURL(); url != "" {
		fields = append(fields, zap.String("docs", url))
	}
	if e.details != "" {
		fields = append(fields, zap.String("details", e.details))
	}
	return append(fields, zap.String("chain", chainString(e)))
}

// chainString renders the tags of a cause chain, outermost first, e.g.
// "ContractFunctionExecutionError <- ContractFunctionRevertedError".
func chainString(err error) string {
	var tags []string
	Walk(err, func(cur error) bool {
		if e, ok := cur.(*Error); ok {
			tags = append(tags, string(e.tag))
		} else {
			tags = append(tags, "native")
		}
		return false
	})
	return strings.Join(tags, " <- ")
}
