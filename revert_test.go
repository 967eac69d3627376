package evmerrors

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenErrorsABIJSON = `[
	{
		"type": "error",
		"name": "InsufficientBalance",
		"inputs": [
			{"name": "available", "type": "uint256"},
			{"name": "required", "type": "uint256"}
		]
	},
	{
		"type": "error",
		"name": "Unauthorized",
		"inputs": [
			{"name": "caller", "type": "address"}
		]
	},
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	}
]`

func withSelector(sel [4]byte, payload []byte) []byte {
	out := make([]byte, 0, 4+len(payload))
	out = append(out, sel[:]...)
	return append(out, payload...)
}

func encodeErrorString(t *testing.T, reason string) []byte {
	t.Helper()
	typ, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: typ}}.Pack(reason)
	require.NoError(t, err)
	return withSelector(ErrorStringSelector, packed)
}

func encodePanic(t *testing.T, code int64) []byte {
	t.Helper()
	typ, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: typ}}.Pack(big.NewInt(code))
	require.NoError(t, err)
	return withSelector(PanicSelector, packed)
}

func encodeCustomError(t *testing.T, parsed abi.ABI, name string, args ...any) []byte {
	t.Helper()
	abiErr, ok := parsed.Errors[name]
	require.True(t, ok)
	packed, err := abiErr.Inputs.Pack(args...)
	require.NoError(t, err)
	var sel [4]byte
	copy(sel[:], abiErr.ID[:4])
	return withSelector(sel, packed)
}

func TestSelectors(t *testing.T) {
	assert.Equal(t, "0x08c379a0", hexutil.Encode(ErrorStringSelector[:]))
	assert.Equal(t, "0x4e487b71", hexutil.Encode(PanicSelector[:]))
	assert.Equal(t, "0xa9059cbb", hexutil.Encode(func() []byte { s := Selector("transfer(address,uint256)"); return s[:] }()))
}

func TestDecodeRevertEmpty(t *testing.T) {
	assert.Nil(t, DecodeRevert(nil, nil))
	assert.Nil(t, DecodeRevert([]byte{}, nil))

	result, err := DecodeRevertHex("0x", nil)
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = DecodeRevertHex("", nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDecodeRevertHexInvalid(t *testing.T) {
	_, err := DecodeRevertHex("0xzz", nil)
	require.ErrorIs(t, err, ErrInvalidHex)

	_, err = DecodeRevertHex("08c379a0", nil)
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestDecodeRevertErrorString(t *testing.T) {
	t.Run("standard encoding", func(t *testing.T) {
		data := encodeErrorString(t, "Insufficient balance")
		result := DecodeRevert(data, nil)

		require.NotNil(t, result)
		assert.Equal(t, "Error", result.ErrorName)
		assert.Equal(t, "Insufficient balance", result.Reason)
		assert.Empty(t, result.Signature)
		assert.Equal(t, hexutil.Bytes(data), result.Raw)
	})

	t.Run("from hex", func(t *testing.T) {
		data := encodeErrorString(t, "nope")
		result, err := DecodeRevertHex(hexutil.Encode(data), nil)
		require.NoError(t, err)
		assert.Equal(t, "nope", result.Reason)
	})

	t.Run("utf8 reason", func(t *testing.T) {
		result := DecodeRevert(encodeErrorString(t, "sólo €"), nil)
		assert.Equal(t, "sólo €", result.Reason)
	})

	t.Run("nul bytes are skipped", func(t *testing.T) {
		payload := make([]byte, 96)
		payload[31] = 0x20
		payload[63] = 5
		copy(payload[64:], []byte{'a', 'b', 0, 'c', 'd'})

		result := DecodeRevert(withSelector(ErrorStringSelector, payload), nil)
		assert.Equal(t, "abcd", result.Reason)
	})

	t.Run("declared length larger than data is clamped", func(t *testing.T) {
		payload := make([]byte, 67)
		payload[31] = 0x20
		payload[63] = 0xff
		copy(payload[64:], "abc")

		result := DecodeRevert(withSelector(ErrorStringSelector, payload), nil)
		assert.Equal(t, "abc", result.Reason)
	})

	t.Run("short payload keeps name without reason", func(t *testing.T) {
		result := DecodeRevert(withSelector(ErrorStringSelector, make([]byte, 40)), nil)

		require.NotNil(t, result)
		assert.Equal(t, "Error", result.ErrorName)
		assert.Empty(t, result.Reason)
		assert.Empty(t, result.Signature)
	})
}

func TestDecodeRevertPanic(t *testing.T) {
	tests := []struct {
		code     int64
		expected string
	}{
		{0x00, "An `assert` condition failed."},
		{0x01, "Arithmetic operation resulted in underflow or overflow."},
		{0x11, "Arithmetic operation resulted in underflow or overflow."},
		{0x12, "Division or modulo by zero (e.g. `5 / 0` or `23 % 0`)."},
		{0x32, "Accessed array index that is out of bounds."},
		{0x51, "Called a zero-initialized variable of internal function type."},
		{0x99, "Panic due to 153"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := DecodeRevert(encodePanic(t, tt.code), nil)
			require.NotNil(t, result)
			assert.Equal(t, "Panic", result.ErrorName)
			assert.Equal(t, tt.expected, result.Reason)
			assert.Empty(t, result.Signature)
		})
	}

	t.Run("code wider than uint64", func(t *testing.T) {
		payload := make([]byte, 32)
		payload[0] = 0x01
		result := DecodeRevert(withSelector(PanicSelector, payload), nil)
		expected := new(big.Int).Lsh(big.NewInt(1), 248)
		assert.Equal(t, "Panic due to "+expected.String(), result.Reason)
	})

	t.Run("missing code falls back to signature", func(t *testing.T) {
		result := DecodeRevert(PanicSelector[:], nil)
		require.NotNil(t, result)
		assert.Empty(t, result.ErrorName)
		assert.Empty(t, result.Reason)
		assert.Equal(t, "0x4e487b71", result.Signature)
	})

	t.Run("trailing bytes after the code are ignored", func(t *testing.T) {
		data := append(encodePanic(t, 0x12), make([]byte, 32)...)
		data[len(data)-1] = 0xff

		result := DecodeRevert(data, nil)
		require.NotNil(t, result)
		assert.Equal(t, "Panic", result.ErrorName)
		assert.Equal(t, "Division or modulo by zero (e.g. `5 / 0` or `23 % 0`).", result.Reason)
		assert.Empty(t, result.Signature)
	})

	t.Run("short code word", func(t *testing.T) {
		result := DecodeRevert(withSelector(PanicSelector, []byte{0x32}), nil)
		assert.Equal(t, "Accessed array index that is out of bounds.", result.Reason)
	})
}

func TestDecodeRevertUnknownSelector(t *testing.T) {
	data := hexutil.MustDecode("0xdeadbeef0000000000000000000000000000000000000000000000000000000000000001")

	result := DecodeRevert(data, nil)
	require.NotNil(t, result)
	assert.Equal(t, "0xdeadbeef", result.Signature)
	assert.Empty(t, result.Reason)
	assert.Empty(t, result.ErrorName)
	assert.Equal(t, hexutil.Bytes(data), result.Raw)

	t.Run("not in abi", func(t *testing.T) {
		parsed := MustParseABI(tokenErrorsABIJSON)
		result := DecodeRevert(data, &parsed)
		assert.Equal(t, "0xdeadbeef", result.Signature)
		assert.Empty(t, result.ErrorName)
	})

	t.Run("shorter than a selector", func(t *testing.T) {
		result := DecodeRevert([]byte{0xde, 0xad}, nil)
		assert.Equal(t, "0xdead", result.Signature)
	})
}

func TestDecodeRevertCustomError(t *testing.T) {
	parsed := MustParseABI(tokenErrorsABIJSON)

	t.Run("matched and decoded", func(t *testing.T) {
		data := encodeCustomError(t, parsed, "InsufficientBalance", big.NewInt(1), big.NewInt(2))
		result := DecodeRevert(data, &parsed)

		require.NotNil(t, result)
		assert.Equal(t, "InsufficientBalance", result.ErrorName)
		assert.Equal(t, "InsufficientBalance(uint256,uint256)", result.ErrorSig)
		expectedSel := Selector("InsufficientBalance(uint256,uint256)")
		assert.Equal(t, hexutil.Encode(expectedSel[:]), result.Signature)
		assert.Empty(t, result.Reason)
		require.Len(t, result.Args, 2)
		assert.Equal(t, "InsufficientBalance(1, 2)", result.CustomError())
	})

	t.Run("address argument", func(t *testing.T) {
		caller := common.HexToAddress("0x1234567890123456789012345678901234567890")
		data := encodeCustomError(t, parsed, "Unauthorized", caller)
		result := DecodeRevert(data, &parsed)

		require.Len(t, result.Args, 1)
		assert.Equal(t, caller, result.Args[0])
	})

	t.Run("malformed arguments keep the match", func(t *testing.T) {
		sel := Selector("InsufficientBalance(uint256,uint256)")
		result := DecodeRevert(withSelector(sel, []byte{0x01}), &parsed)

		assert.Equal(t, "InsufficientBalance", result.ErrorName)
		assert.Nil(t, result.Args)
		assert.Equal(t, "InsufficientBalance(uint256,uint256)", result.CustomError())
	})

	t.Run("without abi only the selector is reported", func(t *testing.T) {
		data := encodeCustomError(t, parsed, "InsufficientBalance", big.NewInt(1), big.NewInt(2))
		result := DecodeRevert(data, nil)

		assert.Empty(t, result.ErrorName)
		assert.Equal(t, hexutil.Encode(data[:4]), result.Signature)
		assert.Empty(t, result.CustomError())
	})
}

func TestRevertResultShortMessage(t *testing.T) {
	tests := []struct {
		name     string
		result   *RevertResult
		override string
		expected string
	}{
		{
			name:     "reason wins",
			result:   &RevertResult{Reason: "no", Signature: "0x12345678"},
			override: "override",
			expected: "The contract function \"transfer\" reverted with the following reason:\nno",
		},
		{
			name:     "signature next",
			result:   &RevertResult{Signature: "0x12345678"},
			override: "override",
			expected: "The contract function \"transfer\" reverted with the following signature:\n0x12345678",
		},
		{
			name:     "override next",
			result:   &RevertResult{ErrorName: "Error"},
			override: "override",
			expected: "override",
		},
		{
			name:     "generic",
			result:   nil,
			expected: "The contract function \"transfer\" reverted.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.ShortMessage("transfer", tt.override))
		})
	}
}
