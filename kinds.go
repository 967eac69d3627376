package evmerrors

import "strings"

// Tag is the stable discriminant of an error kind, e.g. "OutOfGasError".
type Tag string

// String returns the tag as a plain string.
func (t Tag) String() string {
	return string(t)
}

// Category groups tags by the layer they originate from. Categories carry
// the default code of their members.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryEVM
	CategoryTransaction
	CategoryBlock
	CategoryState
	CategoryNode
	CategoryJSONRPC
	CategoryTransport
	CategoryContract
	// CategoryDefensive marks invariant violations inside the toolkit itself.
	CategoryDefensive
)

var categoryNames = [...]string{
	CategoryUnknown:     "unknown",
	CategoryEVM:         "evm",
	CategoryTransaction: "transaction",
	CategoryBlock:       "block",
	CategoryState:       "state",
	CategoryNode:        "node",
	CategoryJSONRPC:     "jsonrpc",
	CategoryTransport:   "transport",
	CategoryContract:    "contract",
	CategoryDefensive:   "defensive",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[CategoryUnknown]
}

var categoryCodes = map[Category]Code{
	CategoryEVM:         CodeInvalidInput,
	CategoryTransaction: CodeTransactionRejected,
	CategoryBlock:       CodeResourceNotFound,
	CategoryState:       CodeResourceNotFound,
	CategoryNode:        CodeResourceUnavailable,
	CategoryTransport:   CodeInternalError,
	CategoryDefensive:   CodeInternalError,
}

// EVM execution.
const (
	TagOutOfGas            Tag = "OutOfGasError"
	TagRevert              Tag = "RevertError"
	TagInvalidOpcode       Tag = "InvalidOpcodeError"
	TagStackOverflow       Tag = "StackOverflowError"
	TagStackUnderflow      Tag = "StackUnderflowError"
	TagInvalidJump         Tag = "InvalidJumpError"
	TagInsufficientBalance Tag = "InsufficientBalanceError"
	TagInsufficientFunds   Tag = "InsufficientFundsError"
)

// Transactions, blocks and state.
const (
	TagInvalidTransaction    Tag = "InvalidTransactionError"
	TagNonceTooLow           Tag = "NonceTooLowError"
	TagNonceTooHigh          Tag = "NonceTooHighError"
	TagGasTooLow             Tag = "GasTooLowError"
	TagBlockNotFound         Tag = "BlockNotFoundError"
	TagInvalidBlock          Tag = "InvalidBlockError"
	TagBlockGasLimitExceeded Tag = "BlockGasLimitExceededError"
	TagStateRootNotFound     Tag = "StateRootNotFoundError"
	TagAccountNotFound       Tag = "AccountNotFoundError"
	TagStorage               Tag = "StorageError"
	TagSnapshotNotFound      Tag = "SnapshotNotFoundError"
	TagFilterNotFound        Tag = "FilterNotFoundError"
	TagNodeNotReady          Tag = "NodeNotReadyError"
	TagFork                  Tag = "ForkError"
	TagNetwork               Tag = "NetworkError"
	TagTimeout               Tag = "TimeoutError"
)

// JSON-RPC method handling.
const (
	TagInvalidRequest Tag = "InvalidRequestError"
	TagMethodNotFound Tag = "MethodNotFoundError"
	TagInvalidParams  Tag = "InvalidParamsError"
	TagInternal       Tag = "InternalError"
)

// Contract calls.
const (
	TagRawContract               Tag = "RawContractError"
	TagContractFunctionZeroData  Tag = "ContractFunctionZeroDataError"
	TagContractFunctionReverted  Tag = "ContractFunctionRevertedError"
	TagContractFunctionExecution Tag = "ContractFunctionExecutionError"
)

// Defects in the toolkit itself, and the catch-all.
const (
	TagDefensiveNullCheck Tag = "DefensiveNullCheckError"
	TagUnreachableCode    Tag = "UnreachableCodeError"
	TagUnknown            Tag = "UnknownError"
)

type kind struct {
	category Category
	code     Code
	message  string
}

var kinds = map[Tag]kind{
	TagOutOfGas:            {category: CategoryEVM, message: "Out of gas error occurred."},
	TagRevert:              {category: CategoryEVM, message: "Revert error occurred."},
	TagInvalidOpcode:       {category: CategoryEVM, message: "Invalid opcode encountered."},
	TagStackOverflow:       {category: CategoryEVM, message: "Stack overflow error occurred."},
	TagStackUnderflow:      {category: CategoryEVM, message: "Stack underflow error occurred."},
	TagInvalidJump:         {category: CategoryEVM, message: "Invalid jump destination."},
	TagInsufficientBalance: {category: CategoryEVM, message: "Insufficient balance for the operation."},
	TagInsufficientFunds:   {category: CategoryEVM, message: "Insufficient funds for gas * price + value."},

	TagInvalidTransaction:    {category: CategoryTransaction, message: "Invalid transaction."},
	TagNonceTooLow:           {category: CategoryTransaction, message: "Nonce too low."},
	TagNonceTooHigh:          {category: CategoryTransaction, message: "Nonce too high."},
	TagGasTooLow:             {category: CategoryTransaction, message: "Gas limit is too low for the transaction."},
	TagBlockNotFound:         {category: CategoryBlock, message: "Block not found."},
	TagInvalidBlock:          {category: CategoryBlock, code: CodeInvalidInput, message: "Invalid block."},
	TagBlockGasLimitExceeded: {category: CategoryBlock, code: CodeInvalidInput, message: "Block gas limit exceeded."},
	TagStateRootNotFound:     {category: CategoryState, message: "State root not found."},
	TagAccountNotFound:       {category: CategoryState, message: "Account not found."},
	TagStorage:               {category: CategoryState, code: CodeInternalError, message: "Storage error occurred."},
	TagSnapshotNotFound:      {category: CategoryNode, code: CodeResourceNotFound, message: "Snapshot not found."},
	TagFilterNotFound:        {category: CategoryNode, code: CodeResourceNotFound, message: "Filter not found."},
	TagNodeNotReady:          {category: CategoryNode, message: "Node is not ready."},
	TagFork:                  {category: CategoryTransport, message: "Error occurred while fetching state from the fork."},
	TagNetwork:               {category: CategoryTransport, message: "A network error occurred."},
	TagTimeout:               {category: CategoryTransport, message: "The request timed out."},

	TagInvalidRequest: {category: CategoryJSONRPC, code: CodeInvalidRequest, message: "Invalid request."},
	TagMethodNotFound: {category: CategoryJSONRPC, code: CodeMethodNotFound, message: "Method not found."},
	TagInvalidParams:  {category: CategoryJSONRPC, code: CodeInvalidParams, message: "Invalid params."},
	TagInternal:       {category: CategoryJSONRPC, code: CodeInternalError, message: "Internal error."},

	TagRawContract:               {category: CategoryContract, code: CodeExecutionReverted},
	TagContractFunctionZeroData:  {category: CategoryContract},
	TagContractFunctionReverted:  {category: CategoryContract},
	TagContractFunctionExecution: {category: CategoryContract},

	TagDefensiveNullCheck: {category: CategoryDefensive, message: "An unexpected null value was encountered. This is a bug."},
	TagUnreachableCode:    {category: CategoryDefensive, message: "Unreachable code was executed. This is a bug."},
	TagUnknown:            {category: CategoryUnknown},
}

// Legacy tags still emitted by older producers.
var tagAliases = map[string]Tag{
	"Revert":             TagRevert,
	"UnknownBlock":       TagBlockNotFound,
	"InvalidTransaction": TagInvalidTransaction,
	"AccountNotFound":    TagAccountNotFound,
	"InvalidRequest":     TagInvalidRequest,
	"MethodNotFound":     TagMethodNotFound,
	"InvalidParams":      TagInvalidParams,
}

// ParseTag resolves s to a catalogued tag, accepting legacy aliases such as
// "Revert". Unknown names are returned as-is with ok set to false.
func ParseTag(s string) (tag Tag, ok bool) {
	if alias, found := tagAliases[s]; found {
		return alias, true
	}
	if _, found := kinds[Tag(s)]; found {
		return Tag(s), true
	}
	return Tag(s), false
}

// Category returns the category the tag belongs to.
func (t Tag) Category() Category {
	return kinds[t].category
}

// DefaultCode returns the code an error with this tag gets when neither the
// caller nor the cause supplies one.
func (t Tag) DefaultCode() Code {
	k, ok := kinds[t]
	if !ok {
		return CodeNone
	}
	if k.code != CodeNone {
		return k.code
	}
	return categoryCodes[k.category]
}

// DefaultMessage returns the short message used when the caller passes "".
func (t Tag) DefaultMessage() string {
	return kinds[t].message
}

// DocsPath returns the documentation path of a catalogued tag, or "".
func (t Tag) DocsPath() string {
	if _, ok := kinds[t]; !ok {
		return ""
	}
	return "/reference/tevm/errors/classes/" + strings.ToLower(string(t)) + "/"
}

// IsDefensive reports whether the tag marks an internal invariant violation.
func (t Tag) IsDefensive() bool {
	return t.Category() == CategoryDefensive
}

// NewDefensiveNullCheck reports a value that must never be nil at this point.
func NewDefensiveNullCheck(message string, opts ...Option) *Error {
	return New(TagDefensiveNullCheck, message, opts...)
}

// NewUnreachable reports that a code path believed unreachable was taken.
func NewUnreachable(message string, opts ...Option) *Error {
	return New(TagUnreachableCode, message, opts...)
}
