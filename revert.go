package evmerrors

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// ErrInvalidHex indicates revert data that is not valid 0x-prefixed hex.
var ErrInvalidHex = errors.New("evmerrors: invalid revert data hex")

// Standard revert selectors.
var (
	// ErrorStringSelector is the selector of Error(string), 0x08c379a0.
	ErrorStringSelector = Selector("Error(string)")

	// PanicSelector is the selector of Panic(uint256), 0x4e487b71.
	PanicSelector = Selector("Panic(uint256)")
)

// Error names reported for the two built-in encodings.
const (
	ErrorNameError = "Error"
	ErrorNamePanic = "Panic"
)

// Selector returns the first four bytes of keccak256(signature), e.g.
// Selector("Error(string)").
func Selector(signature string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(signature))[:4])
	return sel
}

// RevertResult is what DecodeRevert extracted from revert data.
type RevertResult struct {
	// ErrorName is "Error", "Panic", the name of a matched custom error, or "".
	ErrorName string

	// Reason is the decoded Error(string) text or the panic explanation.
	Reason string

	// Signature is the 0x-prefixed selector, set when decoding did not get
	// past the selector.
	Signature string

	// ErrorSig is the canonical signature of a matched custom error.
	ErrorSig string

	// Args holds the decoded arguments of a matched custom error.
	Args []any

	// Raw is the undecoded payload.
	Raw hexutil.Bytes
}

// DecodeRevert classifies revert data. It returns nil for empty data; any
// other input yields a result, and decoding problems degrade to reporting
// the raw selector instead of failing.
//
// Custom errors are matched against contractABI by their keccak-256
// selector; contractABI may be nil.
func DecodeRevert(data []byte, contractABI *abi.ABI) (result *RevertResult) {
	if len(data) == 0 {
		return nil
	}

	raw := make(hexutil.Bytes, len(data))
	copy(raw, data)

	if len(data) < 4 {
		return &RevertResult{Signature: hexutil.Encode(data), Raw: raw}
	}

	selector := data[:4]
	fallback := func() *RevertResult {
		return &RevertResult{Signature: hexutil.Encode(selector), Raw: raw}
	}

	defer func() {
		if recover() != nil {
			result = fallback()
		}
	}()

	switch {
	case bytes.Equal(selector, ErrorStringSelector[:]):
		result = &RevertResult{ErrorName: ErrorNameError, Raw: raw}
		if reason, ok := decodeErrorString(data[4:]); ok {
			result.Reason = reason
		}
		return result

	case bytes.Equal(selector, PanicSelector[:]):
		reason, ok := decodePanic(data[4:])
		if !ok {
			return fallback()
		}
		return &RevertResult{ErrorName: ErrorNamePanic, Reason: reason, Raw: raw}

	case contractABI != nil:
		if matched := matchCustomError(data, contractABI); matched != nil {
			matched.Raw = raw
			return matched
		}
	}

	return fallback()
}

// DecodeRevertHex is DecodeRevert for 0x-prefixed hex input. "" and "0x"
// yield a nil result.
func DecodeRevertHex(s string, contractABI *abi.ABI) (*RevertResult, error) {
	if s == "" || s == "0x" {
		return nil, nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return DecodeRevert(data, contractABI), nil
}

// decodeErrorString reads the (offset, length, bytes) encoding of a string.
// The declared length is clamped to the bytes present and NUL bytes are
// dropped.
func decodeErrorString(payload []byte) (string, bool) {
	if len(payload) < 64 {
		return "", false
	}

	var length uint256.Int
	length.SetBytes(payload[32:64])

	body := payload[64:]
	n := uint64(len(body))
	if length.IsUint64() && length.Uint64() < n {
		n = length.Uint64()
	}

	text := make([]byte, 0, n)
	for _, b := range body[:n] {
		if b != 0 {
			text = append(text, b)
		}
	}
	return strings.ToValidUTF8(string(text), "\uFFFD"), true
}

// decodePanic reads the uint256 panic code from the first word of payload.
// Bytes after the first word are ignored; an empty payload is rejected.
func decodePanic(payload []byte) (string, bool) {
	if len(payload) == 0 {
		return "", false
	}
	if len(payload) > 32 {
		payload = payload[:32]
	}

	var code uint256.Int
	code.SetBytes(payload)
	if code.IsUint64() {
		return PanicMessage(code.Uint64()), true
	}
	return "Panic due to " + code.Dec(), true
}

func matchCustomError(data []byte, contractABI *abi.ABI) *RevertResult {
	for _, abiErr := range contractABI.Errors {
		if !bytes.Equal(abiErr.ID[:4], data[:4]) {
			continue
		}
		result := &RevertResult{
			ErrorName: abiErr.Name,
			ErrorSig:  abiErr.Sig,
			Signature: hexutil.Encode(data[:4]),
		}
		if args, err := abiErr.Inputs.Unpack(data[4:]); err == nil {
			result.Args = args
		}
		return result
	}
	return nil
}

// ShortMessage picks the headline for a reverted call: the decoded reason,
// then the signature, then override, then a generic message.
func (r *RevertResult) ShortMessage(functionName, override string) string {
	switch {
	case r != nil && r.Reason != "":
		return fmt.Sprintf("The contract function \"%s\" reverted with the following reason:\n%s", functionName, r.Reason)
	case r != nil && r.Signature != "":
		return fmt.Sprintf("The contract function \"%s\" reverted with the following signature:\n%s", functionName, r.Signature)
	case override != "":
		return override
	default:
		return fmt.Sprintf("The contract function \"%s\" reverted.", functionName)
	}
}

// CustomError renders a matched custom error as Name(arg, ...). It returns
// "" when no custom error was matched.
func (r *RevertResult) CustomError() string {
	if r == nil || r.ErrorSig == "" {
		return ""
	}
	if r.Args == nil {
		return r.ErrorSig
	}
	args := make([]string, len(r.Args))
	for i, arg := range r.Args {
		args[i] = fmt.Sprintf("%v", arg)
	}
	return fmt.Sprintf("%s(%s)", r.ErrorName, strings.Join(args, ", "))
}
