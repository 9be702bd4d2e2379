// Package mockhost provides a recording types.HostContext implementation
// for integration-testing engines against the connector contract.
package mockhost

import (
	dbm "github.com/cometbft/cometbft-db"

	"github.com/minievm/minievm/types"
)

// Host is a HostContext backed by an in-memory database. It records every
// nested call it receives and answers with a canned result, so tests can
// observe both directions of the connector contract.
//
// Storage backend failures are programming errors in a mock, so the storage
// methods panic instead of returning them.
type Host struct {
	db *dbm.MemDB

	// TxContext is returned verbatim by GetTxContext.
	TxContext types.TxContext

	// CallResult is handed back for every nested call. When it carries
	// output, Call returns a copy whose Release increments ReleaseCount.
	CallResult types.Result

	// RecordedCalls collects every message passed to Call, in order.
	RecordedCalls []types.Message

	// ReleaseCount counts how many times callers released a result
	// returned by Call.
	ReleaseCount int
}

var _ types.HostContext = (*Host)(nil)

// New creates a Host with empty storage.
func New() *Host {
	return &Host{db: dbm.NewMemDB()}
}

func storageKey(addr types.Address, key types.Bytes32) []byte {
	k := make([]byte, 0, len(addr)+len(key))
	k = append(k, addr[:]...)
	return append(k, key[:]...)
}

// GetStorage returns the word stored for (addr, key), or the zero word if
// nothing was stored there.
func (h *Host) GetStorage(addr types.Address, key types.Bytes32) types.Bytes32 {
	v, err := h.db.Get(storageKey(addr, key))
	if err != nil {
		panic(err)
	}
	var word types.Bytes32
	copy(word[:], v)
	return word
}

// SetStorage stores value for (addr, key).
func (h *Host) SetStorage(addr types.Address, key types.Bytes32, value types.Bytes32) {
	if err := h.db.Set(storageKey(addr, key), value[:]); err != nil {
		panic(err)
	}
}

// GetTxContext returns the configured transaction context.
func (h *Host) GetTxContext() types.TxContext {
	return h.TxContext
}

// Call records msg and returns CallResult. When the configured result
// carries output, the returned copy owns its own buffer and its Release
// increments ReleaseCount, letting tests assert the exactly-once release
// contract.
func (h *Host) Call(msg types.Message) types.Result {
	h.RecordedCalls = append(h.RecordedCalls, msg)
	res := h.CallResult
	if res.Output != nil {
		res.Output = append([]byte(nil), res.Output...)
		res.Release = func() { h.ReleaseCount++ }
	}
	return res
}
