package types

// Message describes one call into the engine. The caller owns it and the
// engine only reads it, except for the nested messages the engine builds
// itself while forwarding a CALL instruction.
type Message struct {
	// Flags carries call modifiers. Zero means a plain call; the engine
	// never sets any flag on nested messages.
	Flags uint32

	// Depth is the call depth, starting at 0 for the outer invocation.
	Depth int

	// Gas is the execution budget, one unit per instruction.
	Gas int64

	// Destination is the account being executed. Storage access and the
	// ADDRESS instruction resolve against it.
	Destination Address

	// Sender is the account that issued the call.
	Sender Address

	// Value is the amount transferred with the call.
	Value Bytes32

	// Input is the call data read by CALLDATALOAD. For nested messages the
	// slice aliases the parent invocation's memory and is only valid for
	// the duration of the host call.
	Input []byte
}
