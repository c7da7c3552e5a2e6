package cpu

import "fmt"

// add is a helper function for adding n to the A Register, optionally
// with the carry flag, and setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	carry := uint16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + carry
	sumHalf := uint16(c.A&0x0F) + uint16(n&0x0F) + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0x0F, sum > 0xFF)
	c.A = uint8(sum)
}

// subtract is a helper function for subtracting n from a, optionally
// with the carry flag as a borrow, and setting the flags accordingly.
// It returns the result without storing it, so that it can serve CP.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtract(a, n uint8, shouldCarry bool) uint8 {
	borrow := int16(0)
	if shouldCarry && c.isFlagSet(FlagCarry) {
		borrow = 1
	}
	diff := int16(a) - int16(n) - borrow
	diffHalf := int16(a&0x0F) - int16(n&0x0F) - borrow

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// sub subtracts n from the A Register.
//
//	SUB A, n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) sub(n uint8, shouldCarry bool) {
	c.A = c.subtract(c.A, n, shouldCarry)
}

// compare compares n to the A Register. The result is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(c.A, n, false)
}

// aluOperation is one of the eight accumulator operations, in
// the order they are encoded in opcodes 0x80 - 0xBF.
type aluOperation struct {
	name string
	fn   func(c *CPU, n uint8)
}

var aluOperations = [8]aluOperation{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB A,", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND A,", func(c *CPU, n uint8) { c.and(n) }},
	{"XOR A,", func(c *CPU, n uint8) { c.xor(n) }},
	{"OR A,", func(c *CPU, n uint8) { c.or(n) }},
	{"CP A,", func(c *CPU, n uint8) { c.compare(n) }},
}

// generateALUInstructions generates the accumulator instructions.
//
// The instructions are generated in the following format:
//
//	0x80 ADD A, B
//	0x81 ADD A, C
//	....
//	0xBF CP A, A
//	0xC6 ADD A, d8
//	....
//	0xFE CP A, d8
func generateALUInstructions() {
	for i, operation := range aluOperations {
		op := operation
		for j := uint8(0); j < 8; j++ {
			index := j
			DefineInstruction(0x80+uint8(i)*8+j, fmt.Sprintf("%s %s", op.name, registerNameMap[index]), func(c *CPU, operands []byte) {
				op.fn(c, c.readIndex(index))
			})
		}

		DefineInstruction(0xC6+uint8(i)*8, op.name+" d8", func(c *CPU, operands []byte) {
			op.fn(c, operands[0])
		})
	}
}

func init() {
	generateALUInstructions()
}
