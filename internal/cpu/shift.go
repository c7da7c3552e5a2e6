package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// shifted sets the flags shared by the shift and swap instructions
// and returns result.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Set to carry.
func (c *CPU) shifted(result uint8, carry bool) uint8 {
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftLeftArithmetic shifts n left into the carry flag. Bit 0 is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	return c.shifted(n<<1, n&types.Bit7 != 0)
}

// shiftRightArithmetic shifts n right into the carry flag. Bit 7 keeps
// its value, preserving the sign.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	return c.shifted(n>>1|n&types.Bit7, n&types.Bit0 != 0)
}

// shiftRightLogical shifts n right into the carry flag. Bit 7 is reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	return c.shifted(n>>1, n&types.Bit0 != 0)
}

// swap exchanges the upper and lower nibbles of n. C is always reset.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) swap(n uint8) uint8 {
	return c.shifted(n<<4|n>>4, false)
}
