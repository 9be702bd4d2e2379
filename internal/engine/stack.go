package engine

import "github.com/minievm/minievm/types"

const stackCapacity = 1024

// stack is the fixed-capacity value stack. Push and pop perform no bounds
// checks: overflowing or underflowing it is a precondition violation of the
// executed program, and surfaces as a runtime bounds panic rather than a
// reported error.
type stack struct {
	items [stackCapacity]types.Bytes32
	top   int
}

// push appends v at the top of the stack.
func (s *stack) push(v types.Bytes32) {
	s.items[s.top] = v
	s.top++
}

// pop removes and returns the most recently pushed item.
func (s *stack) pop() types.Bytes32 {
	s.top--
	return s.items[s.top]
}
