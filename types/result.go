package types

// StatusCode is the terminal outcome of one invocation. Execution failures
// are reported through it, never as Go errors: every failure is final for
// the invocation that produced it.
type StatusCode int

const (
	// Success means normal completion. Side effects already issued to the
	// host stand.
	Success StatusCode = iota

	// Revert is an explicit rollback signal to the caller. The engine does
	// not undo storage writes itself; that is the host's job when it sees
	// this status.
	Revert

	// OutOfGas means the budget ran out mid-execution. Output is empty and
	// the reported gas is zero.
	OutOfGas

	// UndefinedInstruction means an opcode outside the instruction set was
	// hit, or REVERT was used before the revision that defines it.
	UndefinedInstruction
)

func (s StatusCode) String() string {
	switch s {
	case Success:
		return "success"
	case Revert:
		return "revert"
	case OutOfGas:
		return "out of gas"
	case UndefinedInstruction:
		return "undefined instruction"
	default:
		return "unknown"
	}
}

// Result is the outcome of one invocation or one nested call.
//
// Output ownership follows the release contract: when Release is nil the
// receiver owns Output outright. When Release is non-nil the producer owns
// the buffer and the receiver must invoke Release exactly once after it is
// done with Output; using Output afterwards is a caller error. Results built
// by this engine always copy their output and carry a nil Release.
type Result struct {
	StatusCode StatusCode
	GasLeft    int64
	Output     []byte
	Release    func()
}
