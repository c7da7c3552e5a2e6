// Package ram provides a flat 64K memory the CPU can execute against.
package ram

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes.
const Size = 0x10000

// ErrProgramTooLarge is returned by Load when the data does not fit
// between the origin and the end of the address space.
var ErrProgramTooLarge = errors.New("program does not fit in memory")

// RAM represents a block of RAM covering the whole 16-bit address space.
// The zero value is ready to use, with every byte cleared.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new, cleared RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Load copies data into memory starting at origin.
func (r *RAM) Load(origin uint16, data []byte) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrProgramTooLarge, len(data), origin)
	}
	copy(r.data[origin:], data)
	return nil
}

// Clear sets every byte to 0.
func (r *RAM) Clear() {
	r.data = [Size]uint8{}
}
