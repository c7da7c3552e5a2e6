package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// loadRegisterToMemory loads the value of the given Register into the given
// memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg types.Register, address uint16) {
	c.writeByte(address, reg)
}

// loadMemoryToRegister loads the value at the given memory address into the
// given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *types.Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToHardware loads the value of the given Register into the high
// page at the given offset.
//
//	LDH (a8), A
//	LD (C), A
func (c *CPU) loadRegisterToHardware(reg types.Register, offset uint8) {
	c.writeByte(types.HighPage+uint16(offset), reg)
}

// loadHardwareToRegister loads the value in the high page at the given
// offset into the given Register.
//
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadHardwareToRegister(reg *types.Register, offset uint8) {
	*reg = c.readByte(types.HighPage + uint16(offset))
}

// storeStackPointer writes SP to the given address, low byte first.
//
//	LD (a16), SP
func (c *CPU) storeStackPointer(address uint16) {
	c.writeByte(address, uint8(c.SP&0xFF))
	c.writeByte(address+1, uint8(c.SP>>8))
}

func init() {
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, operands []byte) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		c.storeStackPointer(binary.LittleEndian.Uint16(operands))
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, operands []byte) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, operands []byte) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, operands []byte) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, operands []byte) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, operands []byte) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, operands []byte) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, operands []byte) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) { c.loadRegisterToHardware(c.A, operands[0]) })
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, operands []byte) { c.loadRegisterToHardware(c.A, c.C) })
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.loadRegisterToMemory(c.A, binary.LittleEndian.Uint16(operands))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) { c.loadHardwareToRegister(&c.A, operands[0]) })
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, operands []byte) { c.loadHardwareToRegister(&c.A, c.C) })
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []byte) {
		c.HL.SetUint16(c.addSPSigned(operands[0]))
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, operands []byte) { c.SP = c.HL.Uint16() })
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.loadMemoryToRegister(&c.A, binary.LittleEndian.Uint16(operands))
	})

	generateLoadImmediateInstructions()
	generateLoadRegisterToRegisterInstructions()
}

// generateLoadImmediateInstructions generates the instructions that load
// an immediate value.
//
//	0x01 LD BC, d16 ... 0x31 LD SP, d16
//	0x06 LD B, d8 ... 0x3E LD A, d8
func generateLoadImmediateInstructions() {
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0x01+index<<4, fmt.Sprintf("LD %s, d16", registerPairs16[index]), func(c *CPU, operands []byte) {
			_, set := c.pair16(index)
			set(binary.LittleEndian.Uint16(operands))
		})
	}

	for i := uint8(0); i < 8; i++ {
		index := i
		DefineInstruction(0x06+index*8, fmt.Sprintf("LD %s, d8", registerNameMap[index]), func(c *CPU, operands []byte) {
			c.writeIndex(index, operands[0])
		})
	}
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76 would be LD (HL), (HL) and is HALT instead.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue
			}

			// needs to be scoped to the loop body otherwise every closure sees the last index
			to, from := i, j
			DefineInstruction(0x40+to*8+from, fmt.Sprintf("LD %s, %s", registerNameMap[to], registerNameMap[from]), func(c *CPU, operands []byte) {
				c.writeIndex(to, c.readIndex(from))
			})
		}
	}
}
