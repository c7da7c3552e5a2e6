package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// The rotates set their flags through shifted: Z from the result,
// N and H reset, C from the bit rotated out.

// rotateLeftCarry rotates n left, copying bit 7 into both bit 0 and C.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	return c.shifted(n<<1|n>>7, n&types.Bit7 != 0)
}

// rotateRightCarry rotates n right, copying bit 0 into both bit 7 and C.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	return c.shifted(n>>1|n<<7, n&types.Bit0 != 0)
}

// rotateLeftThroughCarry rotates n left through C, as a 9-bit value.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit0
	}
	return c.shifted(computed, n&types.Bit7 != 0)
}

// rotateRightThroughCarry rotates n right through C, as a 9-bit value.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit7
	}
	return c.shifted(computed, n&types.Bit0 != 0)
}

// rotateAccumulator applies rotate to A, with the same flags as the
// extended form.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU, operands []byte) { c.rotateAccumulator((*CPU).rotateLeftCarry) })
	DefineInstruction(0x0F, "RRCA", func(c *CPU, operands []byte) { c.rotateAccumulator((*CPU).rotateRightCarry) })
	DefineInstruction(0x17, "RLA", func(c *CPU, operands []byte) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
	DefineInstruction(0x1F, "RRA", func(c *CPU, operands []byte) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })
}
