package evmerrors

import "strconv"

// Code is a JSON-RPC style numeric error classification (EIP-1474 / EIP-1193).
type Code int

// JSON-RPC 2.0 and EIP-1474 codes.
const (
	CodeParseError                Code = -32700
	CodeInvalidRequest            Code = -32600
	CodeMethodNotFound            Code = -32601
	CodeInvalidParams             Code = -32602
	CodeInternalError             Code = -32603
	CodeInvalidInput              Code = -32000
	CodeResourceNotFound          Code = -32001
	CodeResourceUnavailable       Code = -32002
	CodeTransactionRejected       Code = -32003
	CodeMethodNotSupported        Code = -32004
	CodeLimitExceeded             Code = -32005
	CodeJSONRPCVersionUnsupported Code = -32006
)

// EIP-1193 provider codes and the remaining codes used by this package.
const (
	CodeUserRejectedRequest Code = 4001
	CodeUnauthorized        Code = 4100
	CodeUnsupportedMethod   Code = 4200
	CodeDisconnected        Code = 4900
	CodeChainDisconnected   Code = 4901
	CodeExecutionReverted   Code = 3
	CodeUnknown             Code = -1
	CodeNone                Code = 0
)

const unknownCodeDescription = "Unknown error"

var codeDescriptions = map[Code]string{
	CodeParseError:                "Parse error",
	CodeInvalidRequest:            "Invalid request",
	CodeMethodNotFound:            "Method not found",
	CodeInvalidParams:             "Invalid params",
	CodeInternalError:             "Internal error",
	CodeInvalidInput:              "Invalid input",
	CodeResourceNotFound:          "Resource not found",
	CodeResourceUnavailable:       "Resource unavailable",
	CodeTransactionRejected:       "Transaction rejected",
	CodeMethodNotSupported:        "Method not supported",
	CodeLimitExceeded:             "Limit exceeded",
	CodeJSONRPCVersionUnsupported: "JSON-RPC version not supported",

	CodeUserRejectedRequest: "User rejected request",
	CodeUnauthorized:        "Unauthorized",
	CodeUnsupportedMethod:   "Unsupported method",
	CodeDisconnected:        "Disconnected",
	CodeChainDisconnected:   "Chain disconnected",
	CodeExecutionReverted:   "Execution reverted",
	CodeUnknown:             unknownCodeDescription,
}

// CodeDescription returns the short description registered for code.
// The boolean is false for codes outside the table.
func CodeDescription(code Code) (string, bool) {
	desc, ok := codeDescriptions[code]
	return desc, ok
}

// String returns the description of the code, or "Unknown error" when the
// code is not in the table.
func (c Code) String() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return unknownCodeDescription
}

// Int returns the code as a plain int, the shape go-ethereum's rpc package expects.
func (c Code) Int() int {
	return int(c)
}

// Describe renders the code together with its meaning, e.g. "-32601 (Method not found)".
func (c Code) Describe() string {
	return strconv.Itoa(int(c)) + " (" + c.String() + ")"
}
