// Package types provides the types shared between the engine and its host.
package types

import (
	"encoding/hex"

	"github.com/holiman/uint256"
)

// Bytes32 is a 32-byte big-endian word, the unit of the engine's value stack
// and of host storage. The engine works with 8-bit precision: every word it
// produces has at most its last byte set.
type Bytes32 [32]byte

func (b Bytes32) String() string {
	return hex.EncodeToString(b[:])
}

// Address is a 20-byte account address.
type Address [20]byte

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Uint64ToBytes32 encodes v as a big-endian 32-byte word.
func Uint64ToBytes32(v uint64) Bytes32 {
	return Bytes32(uint256.NewInt(v).Bytes32())
}

// AddressToBytes32 right-aligns addr in a word: 12 zero bytes followed by
// the 20 address bytes.
func AddressToBytes32(addr Address) Bytes32 {
	var b Bytes32
	copy(b[12:], addr[:])
	return b
}

// Capabilities is the flagset an engine reports from its Capabilities method.
type Capabilities uint32

// CapabilityEVM1 marks an engine that interprets EVM1 bytecode.
const CapabilityEVM1 Capabilities = 1 << 0

// SetOptionResult is the outcome of VM.SetOption.
type SetOptionResult int

const (
	OptionSuccess SetOptionResult = iota
	OptionInvalidName
	OptionInvalidValue
)
