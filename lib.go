// Package minievm implements a minimal bytecode execution engine behind a
// narrow host-connector contract.
//
// The engine interprets a small subset of EVM instructions and delegates all
// external-state access (storage, transaction context, nested calls) to a
// host-provided types.HostContext. It exists to validate the connector
// contract between an execution engine and a managing host process, so the
// interpretation is deliberately simplistic and unsafe: stack and memory
// bounds are not checked and most operations use 8-bit precision.
package minievm

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/minievm/minievm/internal/engine"
	"github.com/minievm/minievm/types"
)

const (
	// Name identifies this engine to the host.
	Name = "minievm"
	// Version is the engine version reported alongside Name.
	Version = "1.0.0"
)

// VM is the main entry point to this library. It is stateless between
// invocations except for its verbosity setting; a single VM may serve any
// number of sequential Execute calls.
type VM struct {
	logger  *zap.Logger
	verbose int
}

// Option configures a VM created by New.
type Option func(*VM)

// WithLogger sets the logger used for verbose execution tracing.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(vm *VM) { vm.logger = logger }
}

// WithVerbosity sets the initial verbosity level, equivalent to calling
// SetOption("verbose", ...) right after creation.
func WithVerbosity(v int) Option {
	return func(vm *VM) { vm.verbose = v }
}

// New creates a new VM.
func New(opts ...Option) *VM {
	vm := &VM{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Name returns the engine name reported to the host.
func (vm *VM) Name() string { return Name }

// Version returns the engine version reported to the host.
func (vm *VM) Version() string { return Version }

// Destroy releases the engine handle. The engine keeps no state between
// invocations, so this only flushes the logger. Using the handle after
// Destroy is a caller error.
func (vm *VM) Destroy() {
	_ = vm.logger.Sync()
}

// Capabilities reports what this engine can execute.
func (vm *VM) Capabilities() types.Capabilities {
	return types.CapabilityEVM1
}

// SetOption recognizes exactly one option, "verbose", whose value must be an
// integer literal (decimal, 0x-hex or 0-octal) in [-1, 9].
func (vm *VM) SetOption(name, value string) types.SetOptionResult {
	if name != "verbose" {
		return types.OptionInvalidName
	}
	v, err := strconv.ParseInt(value, 0, 32)
	if err != nil || v > 9 || v < -1 {
		return types.OptionInvalidValue
	}
	vm.verbose = int(v)
	return types.OptionSuccess
}

// Execute runs code against msg under the given revision, issuing all
// external-state access to host. The host reference is borrowed for the
// duration of the call. Exactly one Result is returned; the caller owns
// Result.Output (Release is always nil on engine-built results).
func (vm *VM) Execute(host types.HostContext, rev types.Revision, msg types.Message, code []byte) types.Result {
	return engine.Execute(host, rev, msg, code, vm.logger, vm.verbose)
}
