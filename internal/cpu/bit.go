package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// testBit tests the bit at the given position in n.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, position uint8) {
	c.shouldZeroFlag(bits.Val(n, position))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// resetBit returns n with the bit at the given position cleared.
// No flags are affected.
//
//	RES b, r
func resetBit(n uint8, position uint8) uint8 {
	return bits.Reset(n, position)
}

// setBit returns n with the bit at the given position set.
// No flags are affected.
//
//	SET b, r
func setBit(n uint8, position uint8) uint8 {
	return bits.Set(n, position)
}
