package engine

const memoryCapacity = 1024

// memory is the fixed-capacity addressable byte buffer of one invocation.
// size tracks the highest byte offset written plus one and never shrinks.
// Writes are not checked against the capacity.
type memory struct {
	size int
	data [memoryCapacity]byte
}

// set stores value at index and advances the size high-water mark.
func (m *memory) set(index int, value []byte) {
	copy(m.data[index:], value)
	if end := index + len(value); end > m.size {
		m.size = end
	}
}
