package evmerrors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// CallContext describes the contract call an error belongs to. Nil or empty
// fields are left out of the rendered message.
type CallContext struct {
	ABI             *abi.ABI
	Args            []any
	ContractAddress *common.Address
	FunctionName    string
	Sender          *common.Address
	DocsPath        string
}

// lines renders the "Contract Call:" block.
func (c *CallContext) lines() []string {
	var info []string
	if c.ContractAddress != nil {
		info = append(info, "  Address: "+c.ContractAddress.Hex())
	}
	if c.FunctionName != "" {
		info = append(info, "  Function: "+c.FunctionName)
	}
	if len(c.Args) > 0 {
		info = append(info, "  Args: "+stringifyArgs(c.Args))
	}
	if c.Sender != nil {
		info = append(info, "  Sender: "+c.Sender.Hex())
	}
	if len(info) == 0 {
		return nil
	}
	return append([]string{"Contract Call:"}, info...)
}

func stringifyArgs(args []any) string {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(raw)
}

// NewContractFunctionExecutionError wraps the failure of a contract call with
// the call's context. The short message and meta messages of an *Error cause
// are carried over.
func NewContractFunctionExecutionError(cause error, call CallContext) *Error {
	shortMessage := fmt.Sprintf("An unknown error occurred while executing the contract function \"%s\".", call.FunctionName)

	var meta []string
	if known, ok := cause.(*Error); ok && known != nil {
		shortMessage = known.shortMessage
		if len(known.metaMessages) > 0 {
			meta = append(meta, known.metaMessages...)
			meta = append(meta, " ")
		}
	}
	meta = append(meta, call.lines()...)

	opts := []Option{WithCause(cause), withCall(&call)}
	if len(meta) > 0 {
		opts = append(opts, WithMetaMessages(meta...))
	}
	if call.DocsPath != "" {
		opts = append(opts, WithDocsPath(call.DocsPath))
	}

	return New(TagContractFunctionExecution, shortMessage, opts...)
}

// RevertedParams are the inputs of NewContractFunctionRevertedError.
type RevertedParams struct {
	// ABI is searched for custom errors. Optional.
	ABI *abi.ABI

	// Data is the raw revert payload.
	Data []byte

	// FunctionName is used in the message only.
	FunctionName string

	// Message replaces the generic headline when nothing could be decoded.
	Message string

	// Cause is the transport-level error the data came from. Optional.
	Cause error
}

// NewContractFunctionRevertedError decodes revert data into an error whose
// short message carries the reason, or the selector when only that is known.
func NewContractFunctionRevertedError(p RevertedParams) *Error {
	result := DecodeRevert(p.Data, p.ABI)

	opts := []Option{withRevert(result)}
	if result != nil {
		opts = append(opts, WithData(result.Raw))
	}
	if custom := result.CustomError(); custom != "" {
		opts = append(opts, WithMetaMessages("Error: "+custom))
	}
	if p.Cause != nil {
		opts = append(opts, WithCause(p.Cause))
	}

	return New(TagContractFunctionReverted, result.ShortMessage(p.FunctionName, p.Message), opts...)
}

// NewContractFunctionZeroDataError reports a call that returned "0x".
func NewContractFunctionZeroDataError(functionName string) *Error {
	return New(TagContractFunctionZeroData,
		fmt.Sprintf("The contract function \"%s\" returned no data (\"0x\").", functionName),
		WithMetaMessages(
			"This could be due to any of the following:",
			fmt.Sprintf("  - The contract does not have the function \"%s\",", functionName),
			"  - The parameters passed to the contract function may be invalid, or",
			"  - The address is not a contract.",
		),
	)
}

// NewRawContractError holds undecoded revert data as it came off the wire.
func NewRawContractError(data []byte, message string) *Error {
	return New(TagRawContract, message, WithData(hexutil.Bytes(data)))
}

// RevertData returns the revert payload carried anywhere in err's chain,
// either by an *Error or by any go-ethereum rpc.DataError whose data is hex.
// ok is false when no error in the chain carries data.
func RevertData(err error) (data []byte, ok bool) {
	Walk(err, func(cur error) bool {
		de, isData := cur.(rpc.DataError)
		if !isData {
			return false
		}
		data, ok = bytesFromErrorData(de.ErrorData())
		return ok
	})
	return data, ok
}

func bytesFromErrorData(v any) ([]byte, bool) {
	switch v := v.(type) {
	case hexutil.Bytes:
		return v, true
	case []byte:
		return v, true
	case string:
		if !strings.HasPrefix(v, "0x") {
			return nil, false
		}
		data, err := hexutil.Decode(v)
		if err != nil {
			return nil, false
		}
		return data, true
	default:
		return nil, false
	}
}

// NewContractCallError turns the error of a failed contract call into a
// ContractFunctionExecutionError. When err carries revert data, the data is
// decoded into a ContractFunctionRevertedError first.
func NewContractCallError(err error, call CallContext) *Error {
	if data, ok := RevertData(err); ok {
		reverted := NewContractFunctionRevertedError(RevertedParams{
			ABI:          call.ABI,
			Data:         data,
			FunctionName: call.FunctionName,
			Cause:        err,
		})
		return NewContractFunctionExecutionError(reverted, call)
	}
	return NewContractFunctionExecutionError(err, call)
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
