// Package types holds the register file and the fixed addresses of
// the LR35902.
package types

// Bit masks for the end bits of a byte, which the rotate and
// shift instructions move through the carry flag.
const (
	Bit0 uint8 = 0b0000_0001
	Bit7 uint8 = 0b1000_0000
)
