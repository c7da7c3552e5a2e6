package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addHL adds the given value to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(uint16(sum) == 0, false, (hl&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed 8-bit offset. The carry flags
// come from the unsigned addition of the low byte of SP and the offset.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(value uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(value)))

	tmpVal := c.SP ^ uint16(int8(value)) ^ result

	c.setFlags(false, false, tmpVal&0x10 == 0x10, tmpVal&0x100 == 0x100)

	return result
}

// registerPairs16 lists the pairs addressed by bits 4-5 of the
// 16-bit arithmetic and load opcodes, with SP in the fourth slot.
var registerPairs16 = [4]string{"BC", "DE", "HL", "SP"}

// pair16 returns the getter and setter for the 16-bit operand at
// the given index of registerPairs16.
func (c *CPU) pair16(index uint8) (func() uint16, func(uint16)) {
	var pair *types.RegisterPair
	switch index {
	case 0:
		pair = c.BC
	case 1:
		pair = c.DE
	case 2:
		pair = c.HL
	default:
		return func() uint16 { return c.SP }, func(v uint16) { c.SP = v }
	}
	return pair.Uint16, pair.SetUint16
}

// generateArithmeticInstructions generates INC, DEC and ADD HL for
// every operand.
//
//	0x04 INC B, 0x05 DEC B ... 0x3C INC A, 0x3D DEC A
//	0x03 INC BC, 0x0B DEC BC, 0x09 ADD HL, BC ... 0x39 ADD HL, SP
func generateArithmeticInstructions() {
	for i := uint8(0); i < 8; i++ {
		index := i
		DefineInstruction(0x04+index*8, fmt.Sprintf("INC %s", registerNameMap[index]), func(c *CPU, operands []byte) {
			c.writeIndex(index, c.increment(c.readIndex(index)))
		})
		DefineInstruction(0x05+index*8, fmt.Sprintf("DEC %s", registerNameMap[index]), func(c *CPU, operands []byte) {
			c.writeIndex(index, c.decrement(c.readIndex(index)))
		})
	}

	for i := uint8(0); i < 4; i++ {
		index := i
		name := registerPairs16[index]
		DefineInstruction(0x03+index<<4, "INC "+name, func(c *CPU, operands []byte) {
			get, set := c.pair16(index)
			set(get() + 1)
		})
		DefineInstruction(0x0B+index<<4, "DEC "+name, func(c *CPU, operands []byte) {
			get, set := c.pair16(index)
			set(get() - 1)
		})
		DefineInstruction(0x09+index<<4, "ADD HL, "+name, func(c *CPU, operands []byte) {
			get, _ := c.pair16(index)
			c.addHL(get())
		})
	}
}

func init() {
	generateArithmeticInstructions()

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []byte) {
		c.SP = c.addSPSigned(operands[0])
	})
}
