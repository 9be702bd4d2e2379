package engine

import "fmt"

// The instruction set interpreted by this engine. Any other byte terminates
// execution with UndefinedInstruction.
const (
	opStop         = 0x00
	opAdd          = 0x01
	opAddress      = 0x30
	opCallDataLoad = 0x35
	opNumber       = 0x43
	opMStore       = 0x52
	opSLoad        = 0x54
	opSStore       = 0x55
	opMSize        = 0x59
	opPush1        = 0x60
	opDup1         = 0x80
	opCall         = 0xf1
	opReturn       = 0xf3
	opRevert       = 0xfd
)

var opNames = map[byte]string{
	opStop:         "STOP",
	opAdd:          "ADD",
	opAddress:      "ADDRESS",
	opCallDataLoad: "CALLDATALOAD",
	opNumber:       "NUMBER",
	opMStore:       "MSTORE",
	opSLoad:        "SLOAD",
	opSStore:       "SSTORE",
	opMSize:        "MSIZE",
	opPush1:        "PUSH1",
	opDup1:         "DUP1",
	opCall:         "CALL",
	opReturn:       "RETURN",
	opRevert:       "REVERT",
}

func opName(op byte) string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", op)
}
