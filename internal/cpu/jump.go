package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// call pushes PC and jumps to address. Operands have already been
// fetched, so PC is the address of the next instruction.
//
//	CALL nn
//	RST n
func (c *CPU) call(address uint16) {
	c.pushWord(c.PC)
	c.PC = address
}

// jumpRelative adds the signed offset to PC, which already points past
// the operand.
//
//	JR e
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// ret pops the return address into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popWord()
}

// condition is one of the four branch conditions, in the order they
// are encoded in bits 3-4 of the conditional opcodes.
type condition struct {
	name string
	flag Flag
	set  bool // the branch is taken when flag is in this state
}

var conditions = [4]condition{
	{"NZ", FlagZero, false},
	{"Z", FlagZero, true},
	{"NC", FlagCarry, false},
	{"C", FlagCarry, true},
}

// holds reports whether the condition is met by the current flags.
func (cc condition) holds(c *CPU) bool {
	return c.isFlagSet(cc.flag) == cc.set
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) { c.jumpRelative(operands[0]) })
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.PC = binary.LittleEndian.Uint16(operands)
	})
	DefineInstruction(0xC9, "RET", func(c *CPU, operands []byte) { c.ret() })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []byte) {
		c.call(binary.LittleEndian.Uint16(operands))
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU, operands []byte) {
		c.ret()
		c.ime = true
	})
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU, operands []byte) { c.PC = c.HL.Uint16() })

	generateConditionalInstructions()
	generateRSTInstructions()
}

// generateConditionalInstructions generates JR, JP, CALL and RET for
// each of the four conditions.
//
//	0x20 JR NZ, r8  0x28 JR Z, r8  0x30 JR NC, r8  0x38 JR C, r8
//	0xC0 RET NZ     0xC2 JP NZ, a16  0xC4 CALL NZ, a16 ...
func generateConditionalInstructions() {
	for i, cond := range conditions {
		cc := cond
		offset := uint8(i) * 8
		DefineInstruction(0x20+offset, fmt.Sprintf("JR %s, r8", cc.name), func(c *CPU, operands []byte) {
			if cc.holds(c) {
				c.jumpRelative(operands[0])
			}
		})
		DefineInstruction(0xC0+offset, fmt.Sprintf("RET %s", cc.name), func(c *CPU, operands []byte) {
			if cc.holds(c) {
				c.ret()
			}
		})
		DefineInstruction(0xC2+offset, fmt.Sprintf("JP %s, a16", cc.name), func(c *CPU, operands []byte) {
			if cc.holds(c) {
				c.PC = binary.LittleEndian.Uint16(operands)
			}
		})
		DefineInstruction(0xC4+offset, fmt.Sprintf("CALL %s, a16", cc.name), func(c *CPU, operands []byte) {
			if cc.holds(c) {
				c.call(binary.LittleEndian.Uint16(operands))
			}
		})
	}
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i, vector := range types.RestartVectors {
		address := vector
		DefineInstruction(0xC7+uint8(i)*8, fmt.Sprintf("RST %02Xh", address), func(c *CPU, operands []byte) {
			c.call(address)
		})
	}
}
