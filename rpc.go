package evmerrors

import (
	"errors"

	"github.com/ethereum/go-ethereum/rpc"
)

// Tags of errors returned over JSON-RPC, one per code.
const (
	TagParseRPC                  Tag = "ParseRpcError"
	TagInvalidRequestRPC         Tag = "InvalidRequestRpcError"
	TagMethodNotFoundRPC         Tag = "MethodNotFoundRpcError"
	TagInvalidParamsRPC          Tag = "InvalidParamsRpcError"
	TagInternalRPC               Tag = "InternalRpcError"
	TagInvalidInputRPC           Tag = "InvalidInputRpcError"
	TagResourceNotFoundRPC       Tag = "ResourceNotFoundRpcError"
	TagResourceUnavailableRPC    Tag = "ResourceUnavailableRpcError"
	TagTransactionRejectedRPC    Tag = "TransactionRejectedRpcError"
	TagMethodNotSupportedRPC     Tag = "MethodNotSupportedRpcError"
	TagLimitExceededRPC          Tag = "LimitExceededRpcError"
	TagJSONRPCVersionUnsupported Tag = "JsonRpcVersionUnsupportedError"
	TagUserRejectedRequest       Tag = "UserRejectedRequestError"
	TagUnauthorizedProvider      Tag = "UnauthorizedProviderError"
	TagUnsupportedProviderMethod Tag = "UnsupportedProviderMethodError"
	TagProviderDisconnected      Tag = "ProviderDisconnectedError"
	TagChainDisconnected         Tag = "ChainDisconnectedError"
	TagUnknownRPC                Tag = "UnknownRpcError"
)

type rpcKind struct {
	tag     Tag
	message string
}

var rpcKinds = map[Code]rpcKind{
	CodeParseError:                {TagParseRPC, "Invalid JSON was received by the server. An error occurred on the server while parsing the JSON text."},
	CodeInvalidRequest:            {TagInvalidRequestRPC, "JSON is not a valid request object."},
	CodeMethodNotFound:            {TagMethodNotFoundRPC, "The method does not exist / is not available."},
	CodeInvalidParams:             {TagInvalidParamsRPC, "Invalid parameters were provided to the RPC method.\nDouble check you have provided the correct parameters."},
	CodeInternalError:             {TagInternalRPC, "An internal error was received."},
	CodeInvalidInput:              {TagInvalidInputRPC, "Missing or invalid parameters.\nDouble check you have provided the correct parameters."},
	CodeResourceNotFound:          {TagResourceNotFoundRPC, "Requested resource not found."},
	CodeResourceUnavailable:       {TagResourceUnavailableRPC, "Requested resource not available."},
	CodeTransactionRejected:       {TagTransactionRejectedRPC, "Transaction creation failed."},
	CodeMethodNotSupported:        {TagMethodNotSupportedRPC, "Method is not supported."},
	CodeLimitExceeded:             {TagLimitExceededRPC, "Request exceeds defined limit."},
	CodeJSONRPCVersionUnsupported: {TagJSONRPCVersionUnsupported, "Version of JSON-RPC protocol is not supported."},
	CodeUserRejectedRequest:       {TagUserRejectedRequest, "User rejected the request."},
	CodeUnauthorized:              {TagUnauthorizedProvider, "The requested method and/or account has not been authorized by the user."},
	CodeUnsupportedMethod:         {TagUnsupportedProviderMethod, "The Provider does not support the requested method."},
	CodeDisconnected:              {TagProviderDisconnected, "The Provider is disconnected from all chains."},
	CodeChainDisconnected:         {TagChainDisconnected, "The Provider is not connected to the requested chain."},
	CodeUnknown:                   {TagUnknownRPC, "An unknown RPC error occurred."},
}

func init() {
	for code, k := range rpcKinds {
		kinds[k.tag] = kind{category: CategoryJSONRPC, code: code, message: k.message}
	}
}

// NewRPCError builds the JSON-RPC error for code, wrapping cause. Codes
// without a dedicated kind produce an UnknownRpcError that keeps the code.
func NewRPCError(code Code, cause error) *Error {
	k, ok := rpcKinds[code]
	if !ok {
		k = rpcKinds[CodeUnknown]
	}
	return New(k.tag, k.message, WithCause(cause), WithCode(code))
}

// NewInternalRPCError reports an internal JSON-RPC error (-32603).
func NewInternalRPCError(cause error) *Error {
	return NewRPCError(CodeInternalError, cause)
}

// NewInvalidInputRPCError reports missing or invalid parameters (-32000).
func NewInvalidInputRPCError(cause error) *Error {
	return NewRPCError(CodeInvalidInput, cause)
}

// NewInvalidParamsRPCError reports invalid method parameters (-32602).
func NewInvalidParamsRPCError(cause error) *Error {
	return NewRPCError(CodeInvalidParams, cause)
}

// NewMethodNotFoundRPCError reports an unknown method (-32601).
func NewMethodNotFoundRPCError(cause error) *Error {
	return NewRPCError(CodeMethodNotFound, cause)
}

// NewLimitExceededRPCError reports a request over a limit (-32005).
func NewLimitExceededRPCError(cause error) *Error {
	return NewRPCError(CodeLimitExceeded, cause)
}

// NewUserRejectedRequestError reports a request the user declined (4001).
func NewUserRejectedRequestError(cause error) *Error {
	return NewRPCError(CodeUserRejectedRequest, cause)
}

// From normalises err into an *Error:
//   - the outermost *Error in err's chain is returned as-is,
//   - an error chain holding a go-ethereum rpc.Error is mapped by its code to
//     the RPC kinds, keeping any rpc.DataError payload,
//   - anything else becomes an UnknownError wrapping err.
//
// From returns nil for a nil error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var known *Error
	if errors.As(err, &known) && known != nil {
		return known
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return New(TagUnknown, err.Error(), WithCause(err))
	}

	code := Code(rpcErr.ErrorCode())
	opts := []Option{WithCause(err), WithCode(code)}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		opts = append(opts, WithData(dataErr.ErrorData()))
	}

	k, ok := rpcKinds[code]
	if !ok {
		k = rpcKinds[CodeUnknown]
	}
	return New(k.tag, k.message, opts...)
}
