package types

// TxContext describes the transaction the current invocation runs in.
// It is a read-only snapshot provided by the host.
type TxContext struct {
	GasPrice       Bytes32
	Origin         Address
	Coinbase       Address
	BlockNumber    int64
	BlockTimestamp int64
	BlockGasLimit  int64
	ChainID        Bytes32
}

// HostContext is the set of callouts the engine issues to its managing host.
// The engine borrows the reference for the duration of one invocation and
// performs no locking; serializing concurrent access is the host's concern.
//
// Call may recurse back into the engine; reentrancy is likewise the host's
// responsibility.
type HostContext interface {
	GetStorage(addr Address, key Bytes32) Bytes32
	SetStorage(addr Address, key Bytes32, value Bytes32)
	GetTxContext() TxContext
	Call(msg Message) Result
}
