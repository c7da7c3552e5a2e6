package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// pushByte decrements SP and writes value at the new SP.
func (c *CPU) pushByte(value uint8) {
	c.SP--
	c.writeByte(c.SP, value)
}

// popByte reads the byte at SP and increments SP.
func (c *CPU) popByte() uint8 {
	value := c.readByte(c.SP)
	c.SP++
	return value
}

// pushWord pushes a 16 bit value onto the stack, high byte first, so
// that the low byte ends up at the lower address.
func (c *CPU) pushWord(value uint16) {
	c.pushByte(uint8(value >> 8))
	c.pushByte(uint8(value))
}

// popWord pops a 16 bit value off the stack, low byte first.
func (c *CPU) popWord() uint16 {
	low := uint16(c.popByte())
	high := uint16(c.popByte())
	return high<<8 | low
}

// stackPairs lists the pairs addressed by bits 4-5 of the PUSH and
// POP opcodes, with AF in the fourth slot.
var stackPairs = [4]string{"BC", "DE", "HL", "AF"}

// generateStackInstructions generates PUSH and POP for every pair.
//
//	0xC1 POP BC ... 0xF1 POP AF
//	0xC5 PUSH BC ... 0xF5 PUSH AF
//
// Flags affected:
//
//	POP AF loads F from the stack, with its lower nibble cleared.
//	Nothing else affects the flags.
func generateStackInstructions() {
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0xC1+index<<4, fmt.Sprintf("POP %s", stackPairs[index]), func(c *CPU, operands []byte) {
			c.stackPair(index).SetUint16(c.popWord())
		})
		DefineInstruction(0xC5+index<<4, fmt.Sprintf("PUSH %s", stackPairs[index]), func(c *CPU, operands []byte) {
			c.pushWord(c.stackPair(index).Uint16())
		})
	}
}

// stackPair returns the RegisterPair at the given index of stackPairs.
func (c *CPU) stackPair(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	}
	return c.AF
}

func init() {
	generateStackInstructions()
}
