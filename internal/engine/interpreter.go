// Package engine implements the instruction dispatch loop of the VM.
//
// The interpreter covers a small subset of EVM instructions in a simplistic
// and deliberately unsafe way: stack and memory bounds are not checked and
// most operations work with 8-bit precision. That is enough to run small
// example bytecode inputs, which makes it useful for integration-testing the
// engine/host connector contract.
package engine

import (
	"go.uber.org/zap"

	"github.com/minievm/minievm/types"
)

// Execute interprets code against msg, delegating all external-state access
// to host. It runs to completion synchronously and produces exactly one
// Result. Stack and memory are local to this call and gone when it returns;
// output bytes are copied out, so the Result stays valid afterwards.
func Execute(host types.HostContext, rev types.Revision, msg types.Message, code []byte, logger *zap.Logger, verbose int) types.Result {
	if verbose > 0 {
		logger.Info("execution started",
			zap.Int64("gas", msg.Gas),
			zap.Int("code_size", len(code)),
			zap.Stringer("revision", rev))
	}

	res := run(host, rev, msg, code, logger, verbose)

	if verbose > 0 {
		logger.Info("execution finished",
			zap.Stringer("status", res.StatusCode),
			zap.Int64("gas_left", res.GasLeft),
			zap.Int("output_size", len(res.Output)))
	}
	return res
}

func run(host types.HostContext, rev types.Revision, msg types.Message, code []byte, logger *zap.Logger, verbose int) types.Result {
	gasLeft := msg.Gas
	var stk stack
	var mem memory

	for pc := 0; pc < len(code); pc++ {
		// Every instruction costs one unit of gas, charged before decode.
		gasLeft--
		if gasLeft < 0 {
			return makeResult(types.OutOfGas, 0, nil)
		}

		op := code[pc]
		if verbose > 1 {
			logger.Debug("dispatch",
				zap.Int("pc", pc),
				zap.String("op", opName(op)),
				zap.Int64("gas_left", gasLeft))
		}

		switch op {
		case opStop:
			return makeResult(types.Success, gasLeft, nil)

		case opAdd:
			a := stk.pop()
			b := stk.pop()
			var v types.Bytes32
			v[31] = a[31] + b[31]
			stk.push(v)

		case opAddress:
			stk.push(types.AddressToBytes32(msg.Destination))

		case opCallDataLoad:
			offset := int(stk.pop()[31])
			var v types.Bytes32
			if offset < len(msg.Input) {
				copy(v[:], msg.Input[offset:])
			}
			stk.push(v)

		case opNumber:
			var v types.Bytes32
			v[31] = byte(host.GetTxContext().BlockNumber)
			stk.push(v)

		case opMStore:
			index := int(stk.pop()[31])
			value := stk.pop()
			mem.set(index, value[:])

		case opSLoad:
			key := stk.pop()
			stk.push(host.GetStorage(msg.Destination, key))

		case opSStore:
			key := stk.pop()
			value := stk.pop()
			host.SetStorage(msg.Destination, key, value)

		case opMSize:
			var v types.Bytes32
			v[31] = byte(mem.size)
			stk.push(v)

		case opPush1:
			pc++
			var v types.Bytes32
			v[31] = code[pc]
			stk.push(v)

		case opDup1:
			v := stk.pop()
			stk.push(v)
			stk.push(v)

		case opCall:
			var call types.Message
			call.Gas = int64(stk.pop()[31])
			dest := stk.pop()
			copy(call.Destination[:], dest[12:])
			call.Value = stk.pop()
			inputOffset := int(stk.pop()[31])
			inputSize := int(stk.pop()[31])
			call.Input = mem.data[inputOffset : inputOffset+inputSize]
			outputOffset := int(stk.pop()[31])
			outputSize := int(stk.pop()[31])

			res := host.Call(call)

			var v types.Bytes32
			if res.StatusCode == types.Success {
				v[31] = 1
			}
			stk.push(v)

			if outputSize > len(res.Output) {
				outputSize = len(res.Output)
			}
			mem.set(outputOffset, res.Output[:outputSize])

			// The nested result's buffer may be owned by its producer.
			// This is the one release point; it must run exactly once.
			if res.Release != nil {
				res.Release()
			}

		case opReturn:
			index := int(stk.pop()[31])
			size := int(stk.pop()[31])
			return makeResult(types.Success, gasLeft, mem.data[index:index+size])

		case opRevert:
			if rev < types.Byzantium {
				return makeResult(types.UndefinedInstruction, 0, nil)
			}
			index := int(stk.pop()[31])
			size := int(stk.pop()[31])
			return makeResult(types.Revert, gasLeft, mem.data[index:index+size])

		default:
			return makeResult(types.UndefinedInstruction, 0, nil)
		}
	}

	// Fell off the end of the code without hitting a terminator.
	return makeResult(types.Success, gasLeft, nil)
}

// makeResult copies output out of the invocation-local memory, so engine
// results carry no Release and the caller owns the copy.
func makeResult(status types.StatusCode, gasLeft int64, output []byte) types.Result {
	res := types.Result{StatusCode: status, GasLeft: gasLeft}
	if len(output) > 0 {
		res.Output = append([]byte(nil), output...)
	}
	return res
}
