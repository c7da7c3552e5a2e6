// Package cpu provides an interpreter for the Sharp LR35902 instruction
// set. The CPU owns its registers, flags and control state, and reaches
// memory only through the Bus it was created with.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Bus is the memory the CPU executes against. Every address in
// 0x0000 - 0xFFFF must be readable and writable; mirroring or
// banking is the concern of the implementation.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT. No instructions are executed
	// until the CPU is woken.
	ModeHalt
	// ModeStop is entered by STOP. No instructions are executed
	// until the CPU is woken.
	ModeStop
)

// CPU represents the LR35902 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the most recently pushed byte.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	bus     Bus
	decoder decoder
	ime     bool
	mode    mode

	operands [2]byte // scratch buffer for the current instruction's operands

	log   log.Logger
	trace bool
}

// NewCPU creates a new CPU instance with the given Bus. The
// CPU is returned in its reset state.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		bus:       bus,
		log:       log.NewNullLogger(),
	}
	c.Reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Reset puts the CPU in its boot state: every register cleared,
// PC and SP at 0x0000, the decoder in DecodePrimary and the
// interrupt master enable set.
func (c *CPU) Reset() {
	c.PC = 0x0000
	c.SP = 0x0000
	c.A, c.F = 0, 0
	c.B, c.C = 0, 0
	c.D, c.E = 0, 0
	c.H, c.L = 0, 0
	c.decoder.reset()
	c.ime = true
	c.mode = ModeNormal
}

// registerNameMap maps the 3-bit register index used in the opcode
// encoding to the name of the operand. Index 6 addresses memory at HL.
var registerNameMap = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns a Register pointer for the given index. Index 6
// is not a register; use readIndex and writeIndex where (HL) is allowed.
func (c *CPU) registerPointer(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readIndex reads the 8-bit operand encoded by index, where index
// 6 reads memory at HL.
func (c *CPU) readIndex(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerPointer(index)
}

// writeIndex writes the 8-bit operand encoded by index, where index
// 6 writes memory at HL.
func (c *CPU) writeIndex(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(index) = value
}

// Step performs exactly one fetch-decode-execute cycle. A CB prefix and
// the extended opcode following it are executed within the same Step.
// When the CPU is halted or stopped Step does nothing.
//
// An opcode without an entry in the decode tables returns an
// *UnimplementedOpcodeError; PC has already moved past the opcode.
func (c *CPU) Step() error {
	if c.mode != ModeNormal {
		return nil
	}

	start := c.PC
	for {
		decodeMode := c.decoder.mode
		opcode := c.fetchByte()
		instruction, err := c.decoder.next(opcode)
		if err != nil {
			var unimplemented *UnimplementedOpcodeError
			if errors.As(err, &unimplemented) {
				unimplemented.PC = start
			}
			return err
		}

		operands := c.operands[:instruction.operands]
		for i := range operands {
			operands[i] = c.fetchByte()
		}

		instruction.fn(c, operands)

		if c.trace && instruction.name != "PREFIX CB" {
			c.log.Debugf("%04X %-8s %-16s % X | %s", start, decodeMode, instruction.name, operands, c)
		}

		if c.decoder.mode == DecodePrimary {
			return nil
		}
	}
}

// fetchByte reads the byte at PC and advances PC.
func (c *CPU) fetchByte() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// Halted reports whether the CPU is in HALT or STOP mode.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Halt puts the CPU in HALT mode, as if HALT had been executed.
func (c *CPU) Halt() {
	c.mode = ModeHalt
}

// Wake returns a halted or stopped CPU to normal execution. It is
// the hook a surrounding interrupt controller calls.
func (c *CPU) Wake() {
	c.mode = ModeNormal
}

// RunMode returns the current CPU mode: ModeNormal, ModeHalt or ModeStop.
func (c *CPU) RunMode() uint8 {
	return c.mode
}

// DecodeMode returns the table the next fetched opcode will be
// resolved against. Between Steps it is always DecodePrimary.
func (c *CPU) DecodeMode() DecodeMode {
	return c.decoder.mode
}

// InterruptsEnabled returns the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// SetInterruptsEnabled sets the interrupt master enable flag.
func (c *CPU) SetInterruptsEnabled(enabled bool) {
	c.ime = enabled
}

// String returns a one line dump of the CPU registers.
func (c *CPU) String() string {
	return fmt.Sprintf("PC: %04X SP: %04X A: %02X F: %04b B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X IME: %t",
		c.PC, c.SP, c.A, c.F>>4, c.B, c.C, c.D, c.E, c.H, c.L, c.ime)
}
