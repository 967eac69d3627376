// Package evmerrors provides a uniform error model for Ethereum execution
// tooling and a decoder for contract revert data.
//
// Every failure is an *Error. Kinds are told apart by a Tag and classified
// by a JSON-RPC style Code, and each error may wrap a lower-level cause so
// that a failure can be followed from the VM through execution and RPC to
// the transport.
//
// # Constructing errors
//
//	err := evmerrors.New(evmerrors.TagOutOfGas, "",
//	    evmerrors.WithCause(vmErr),
//	    evmerrors.WithMetaMessages("gas limit: 21000"),
//	)
//
// The rendered message has a fixed layout:
//
//	<short message>
//
//	<meta message>...
//
//	Docs: <base><path>#<slug>
//	Details: <details>
//	Version: <version>
//
// Docs, Details and the meta block are left out when empty. A cause that is
// itself an *Error passes on its details, docs path and code.
//
// # Inspecting errors
//
// *Error works with errors.Is and errors.As. Walk searches the cause chain
// with a predicate, and FindTag / HasTag look for a kind anywhere in it:
//
//	if reverted := evmerrors.FindTag(err, evmerrors.TagContractFunctionReverted); reverted != nil {
//	    fmt.Println(reverted.Revert().Reason)
//	}
//
// *Error also implements go-ethereum's rpc.Error and rpc.DataError, so it can
// be returned from an rpc server handler as-is, and zapcore.ObjectMarshaler for
// structured logs.
//
// # Decoding revert data
//
// DecodeRevert recognises Error(string) and Panic(uint256) payloads and, given
// a contract ABI, custom errors matched by their keccak-256 selector:
//
//	result := evmerrors.DecodeRevert(data, &contractABI)
//	fmt.Println(result.ErrorName, result.Reason, result.Signature)
//
// NewContractCallError combines decoding with the call context into the error
// a user sees.
package evmerrors
