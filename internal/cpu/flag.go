package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/lr35902/pkg/bits"
)

// Flag is one of the four condition flags held in the upper
// nibble of the F register. Its value is the bit position.
type Flag uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagMask covers the bits of F that hold a flag. The lower
// nibble of F always reads as 0.
const flagMask uint8 = 0xF0

// Flags lists every Flag, in the order they are stored in F.
var Flags = [4]Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

// String returns the single letter name of the flag.
func (f Flag) String() string {
	switch f {
	case FlagZero:
		return "Z"
	case FlagSubtract:
		return "N"
	case FlagHalfCarry:
		return "H"
	case FlagCarry:
		return "C"
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// ParseFlag returns the Flag for the given name. Both the single
// letter names (Z, N, H, C) and the long names (zero, subtract,
// halfcarry, carry) are accepted, case-insensitively.
func ParseFlag(name string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "z", "zero":
		return FlagZero, nil
	case "n", "subtract":
		return FlagSubtract, nil
	case "h", "halfcarry", "half-carry":
		return FlagHalfCarry, nil
	case "c", "carry":
		return FlagCarry, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFlag, name)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, uint8(flag))
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, uint8(flag))
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, uint8(flag))
}

// setFlags assigns all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f = bits.Set(f, uint8(FlagZero))
	}
	if subtract {
		f = bits.Set(f, uint8(FlagSubtract))
	}
	if halfCarry {
		f = bits.Set(f, uint8(FlagHalfCarry))
	}
	if carry {
		f = bits.Set(f, uint8(FlagCarry))
	}
	c.F = f
}

// shouldZeroFlag sets FlagZero if the given value is 0,
// and clears it otherwise.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

// Flag reports whether the given flag is set.
func (c *CPU) Flag(flag Flag) bool {
	return c.isFlagSet(flag)
}
