package minievm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/minievm/minievm/mockhost"
	"github.com/minievm/minievm/types"
)

var (
	testSender      = addressFromHex("5000000000000000000000000000000000000005")
	testDestination = addressFromHex("d00000000000000000000000000000000000000d")
)

func addressFromHex(s string) types.Address {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 20 {
		panic("bad address literal: " + s)
	}
	var addr types.Address
	copy(addr[:], b)
	return addr
}

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func execute(t *testing.T, vm *VM, host *mockhost.Host, rev types.Revision, gas int64, codeHex, inputHex string) types.Result {
	t.Helper()
	msg := types.Message{
		Sender:      testSender,
		Destination: testDestination,
		Gas:         gas,
		Input:       fromHex(t, inputHex),
	}
	return vm.Execute(host, rev, msg, fromHex(t, codeHex))
}

func TestExecuteEmptyCode(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	res := execute(t, vm, mockhost.New(), types.MaxRevision, 999, "", "")
	assert.Equal(t, types.Success, res.StatusCode)
	assert.Equal(t, int64(999), res.GasLeft)
	assert.Empty(t, res.Output)
}

func TestExecuteReturnAddress(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	// Assembly: { mstore(0, address()) return(12, 20) }
	res := execute(t, vm, mockhost.New(), types.MaxRevision, 6, "306000526014600cf3", "")
	assert.Equal(t, types.Success, res.StatusCode)
	assert.Equal(t, int64(0), res.GasLeft)
	assert.Equal(t, testDestination[:], res.Output)
}

func TestExecuteCounterInStorage(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	host := mockhost.New()
	var key types.Bytes32
	host.SetStorage(testDestination, key, types.Uint64ToBytes32(0xbb))

	// Assembly: { sstore(0, add(sload(0), 1)) }
	res := execute(t, vm, host, types.MaxRevision, 10, "60016000540160005500", "")
	assert.Equal(t, types.Success, res.StatusCode)
	assert.Equal(t, int64(3), res.GasLeft)
	assert.Empty(t, res.Output)
	assert.Equal(t, types.Uint64ToBytes32(0xbc), host.GetStorage(testDestination, key))
}

func TestExecuteRevertBlockNumber(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	host := mockhost.New()
	host.TxContext.BlockNumber = 0xb4

	// Assembly: { mstore(0, number()) revert(0, 32) }
	res := execute(t, vm, host, types.MaxRevision, 7, "4360005260206000fd", "")
	assert.Equal(t, types.Revert, res.StatusCode)
	assert.Equal(t, int64(1), res.GasLeft)
	expected := types.Uint64ToBytes32(0xb4)
	assert.Equal(t, expected[:], res.Output)
}

func TestExecuteRevertUndefinedBeforeByzantium(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	res := execute(t, vm, mockhost.New(), types.Frontier, 100, "fd", "")
	assert.Equal(t, types.UndefinedInstruction, res.StatusCode)
	assert.Equal(t, int64(0), res.GasLeft)
	assert.Empty(t, res.Output)
}

func TestExecuteCall(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	host := mockhost.New()
	host.CallResult = types.Result{Output: fromHex(t, "aabbcc")}

	// PUSH1 3, then six DUP1s feed CALL all seven of its arguments; the
	// nested output lands in memory at offset 3 and RETURN hands back the
	// first msize() bytes.
	res := execute(t, vm, host, types.MaxRevision, 100, "6003808080808080f1596000f3", "")
	assert.Equal(t, types.Success, res.StatusCode)
	assert.Equal(t, int64(89), res.GasLeft)
	assert.Equal(t, fromHex(t, "000000aabbcc"), res.Output)

	require.Len(t, host.RecordedCalls, 1)
	call := host.RecordedCalls[0]
	assert.Equal(t, uint32(0), call.Flags)
	assert.Equal(t, int64(3), call.Gas)
	assert.Equal(t, types.Uint64ToBytes32(3), call.Value)
	assert.Equal(t, addressFromHex("0000000000000000000000000000000000000003"), call.Destination)
	assert.Len(t, call.Input, 3)

	assert.Equal(t, 1, host.ReleaseCount)
}

func TestSetOption(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  types.SetOptionResult
	}{
		{"verbose", "0", types.OptionSuccess},
		{"verbose", "9", types.OptionSuccess},
		{"verbose", "-1", types.OptionSuccess},
		{"verbose", "0x5", types.OptionSuccess},
		{"verbose", "10", types.OptionInvalidValue},
		{"verbose", "-2", types.OptionInvalidValue},
		{"verbose", "", types.OptionInvalidValue},
		{"verbose", "huh", types.OptionInvalidValue},
		{"debug", "1", types.OptionInvalidName},
		{"", "1", types.OptionInvalidName},
	}
	for _, tc := range tests {
		vm := New()
		assert.Equal(t, tc.want, vm.SetOption(tc.name, tc.value), "SetOption(%q, %q)", tc.name, tc.value)
		vm.Destroy()
	}
}

func TestSetOptionUpdatesVerbosity(t *testing.T) {
	vm := New()
	defer vm.Destroy()

	require.Equal(t, types.OptionSuccess, vm.SetOption("verbose", "3"))
	assert.Equal(t, 3, vm.verbose)

	// A rejected value must leave the previous setting untouched.
	require.Equal(t, types.OptionInvalidValue, vm.SetOption("verbose", "11"))
	assert.Equal(t, 3, vm.verbose)
}

func TestCapabilities(t *testing.T) {
	vm := New()
	defer vm.Destroy()
	assert.Equal(t, types.CapabilityEVM1, vm.Capabilities())
}

func TestMetadata(t *testing.T) {
	vm := New()
	defer vm.Destroy()
	assert.Equal(t, "minievm", vm.Name())
	assert.NotEmpty(t, vm.Version())
}

func TestVerboseExecutionLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	vm := New(WithLogger(zap.New(core)), WithVerbosity(2))
	defer vm.Destroy()

	res := execute(t, vm, mockhost.New(), types.MaxRevision, 10, "6001600101", "")
	require.Equal(t, types.Success, res.StatusCode)

	assert.Equal(t, 1, logs.FilterMessage("execution started").Len())
	assert.Equal(t, 1, logs.FilterMessage("execution finished").Len())
	// PUSH1, PUSH1, ADD dispatched.
	assert.Equal(t, 3, logs.FilterMessage("dispatch").Len())
}

func TestSilentByDefault(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	vm := New(WithLogger(zap.New(core)))
	defer vm.Destroy()

	res := execute(t, vm, mockhost.New(), types.MaxRevision, 10, "00", "")
	require.Equal(t, types.Success, res.StatusCode)
	assert.Equal(t, 0, logs.Len())
}
