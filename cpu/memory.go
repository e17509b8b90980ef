package cpu

import (
	"maps"
	"slices"
)

const (
	// MEMORY_DENSE_LIMIT is how far past the end of dense memory a write
	// may land and still extend it. Writes further out are kept sparse.
	MEMORY_DENSE_LIMIT = 1 << 20
)

// Memory is the engine's tape. Every address reads as 0 until written,
// and writes extend the tape without bound.
type Memory struct {
	Data   []int64         // Dense cells, from address 0.
	Sparse map[int64]int64 // Cells far beyond the dense range.
}

// Load replaces the memory contents with a copy of program.
func (mem *Memory) Load(program []int64) {
	mem.Data = slices.Clone(program)
	mem.Sparse = nil
}

// Len returns one past the highest address ever written or loaded.
func (mem *Memory) Len() (size int64) {
	size = int64(len(mem.Data))
	for addr := range mem.Sparse {
		size = max(size, addr+1)
	}
	return
}

// Read returns the value at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressInvalid
		return
	}

	if addr < int64(len(mem.Data)) {
		value = mem.Data[addr]
	} else {
		value = mem.Sparse[addr]
	}

	return
}

// Write stores value at addr, growing the memory as needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressInvalid
		return
	}

	size := int64(len(mem.Data))
	switch {
	case addr < size:
		mem.Data[addr] = value
	case addr < size+MEMORY_DENSE_LIMIT:
		mem.grow(addr + 1)
		mem.Data[addr] = value
	default:
		if mem.Sparse == nil {
			mem.Sparse = make(map[int64]int64)
		}
		mem.Sparse[addr] = value
	}

	return
}

// grow extends the dense range to size cells, absorbing any sparse cells
// that now fall inside it.
func (mem *Memory) grow(size int64) {
	start := int64(len(mem.Data))
	mem.Data = slices.Grow(mem.Data, int(size-start))[:size]
	clear(mem.Data[start:])

	for addr, value := range mem.Sparse {
		if addr < size {
			mem.Data[addr] = value
			delete(mem.Sparse, addr)
		}
	}
}

// Snapshot returns a copy of the dense memory.
func (mem *Memory) Snapshot() []int64 {
	return slices.Clone(mem.Data)
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() (clone Memory) {
	clone.Data = slices.Clone(mem.Data)
	if mem.Sparse != nil {
		clone.Sparse = maps.Clone(mem.Sparse)
	}
	return
}
