package cpu

import (
	"fmt"
)

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name     string             // name of the instruction
	operands uint8              // number of operand bytes after the opcode
	fn       func(*CPU, []byte) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction, e.g. "LD A, d8".
func (i Instruction) Name() string {
	return i.name
}

// Operands returns the number of operand bytes the instruction
// reads after its opcode.
func (i Instruction) Operands() uint8 {
	return i.operands
}

// Execute runs the instruction against the CPU with the given
// operand bytes, low byte first.
func (i Instruction) Execute(c *CPU, operands []byte) {
	i.fn(c, operands)
}

func (i Instruction) defined() bool {
	return i.fn != nil
}

// InstructionSet holds the 256 primary instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions reached through
// the 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet with the
// provided opcode. The number of operands is taken from instructionLengths.
func DefineInstruction(opcode uint8, name string, fn func(c *CPU, operands []byte)) {
	length := instructionLengths[opcode]
	if length == 0 {
		panic(fmt.Sprintf("cpu: defining %q for opcode 0x%02X which has no length", name, opcode))
	}

	InstructionSet[opcode] = Instruction{
		name:     name,
		operands: length - 1,
		fn:       fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB with
// the provided opcode. Extended instructions never take operands.
func DefineInstructionCB(opcode uint8, name string, fn func(c *CPU, operands []byte)) {
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, operands []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, operands []byte) { c.mode = ModeStop })
	DefineInstruction(0x27, "DAA", func(c *CPU, operands []byte) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU, operands []byte) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, operands []byte) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, operands []byte) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", func(c *CPU, operands []byte) { c.mode = ModeHalt })
	// the decoder switches tables on the prefix itself
	DefineInstruction(prefixCB, "PREFIX CB", func(c *CPU, operands []byte) {})
	DefineInstruction(0xF3, "DI", func(c *CPU, operands []byte) { c.ime = false })
	DefineInstruction(0xFB, "EI", func(c *CPU, operands []byte) { c.ime = true })
}

// decimalAdjust adjusts the A Register so that it holds the correct
// binary coded decimal result of the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to the adjustment.
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if carry {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}
