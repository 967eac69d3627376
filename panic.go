package evmerrors

import "fmt"

// Solidity panic codes carried by Panic(uint256).
// See https://docs.soliditylang.org/en/latest/control-structures.html#panic-via-assert-and-error-via-require
const (
	PanicAssert              uint64 = 0x00
	PanicArithmeticLegacy    uint64 = 0x01
	PanicArithmetic          uint64 = 0x11
	PanicDivisionByZero      uint64 = 0x12
	PanicEnumConversion      uint64 = 0x21
	PanicStorageEncoding     uint64 = 0x22
	PanicEmptyArrayPop       uint64 = 0x31
	PanicArrayOutOfBounds    uint64 = 0x32
	PanicOutOfMemory         uint64 = 0x41
	PanicZeroFunctionPointer uint64 = 0x51
)

var panicReasons = map[uint64]string{
	PanicAssert:              "An `assert` condition failed.",
	PanicArithmeticLegacy:    "Arithmetic operation resulted in underflow or overflow.",
	PanicArithmetic:          "Arithmetic operation resulted in underflow or overflow.",
	PanicDivisionByZero:      "Division or modulo by zero (e.g. `5 / 0` or `23 % 0`).",
	PanicEnumConversion:      "Converted a value that is too big or negative into an enum type.",
	PanicStorageEncoding:     "Accessed storage byte array that is incorrectly encoded.",
	PanicEmptyArrayPop:       "Called `.pop()` on an empty array.",
	PanicArrayOutOfBounds:    "Accessed array index that is out of bounds.",
	PanicOutOfMemory:         "Allocated too much memory or created an array that is too large.",
	PanicZeroFunctionPointer: "Called a zero-initialized variable of internal function type.",
}

// PanicReason returns the explanation for a Solidity panic code.
func PanicReason(code uint64) (string, bool) {
	reason, ok := panicReasons[code]
	return reason, ok
}

// PanicMessage is like PanicReason but always returns a message, using
// "Panic due to N" for codes outside the table.
func PanicMessage(code uint64) string {
	if reason, ok := panicReasons[code]; ok {
		return reason
	}
	return fmt.Sprintf("Panic due to %d", code)
}
