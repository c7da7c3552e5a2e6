package cpu

import (
	"fmt"
	"testing"
)

func TestInstruction_Bit(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		for j := uint8(0); j < 8; j++ {
			bit, index := b, j
			offset := bit*8 + index
			name := registerNameMap[index]

			testInstructionCB(t, fmt.Sprintf("BIT %d, %s", bit, name), 0x40+offset, func(t *testing.T, instruction Instruction) {
				cpu.HL.SetUint16(0xC000)
				cpu.setFlags(false, true, false, true)
				cpu.writeIndex(index, 1<<bit)
				instruction.Execute(cpu, nil)
				expectFlags(t, flagState{h: true, c: true})

				cpu.HL.SetUint16(0xC000)
				cpu.writeIndex(index, ^uint8(1<<bit))
				instruction.Execute(cpu, nil)
				expectFlags(t, flagState{z: true, h: true, c: true})
			})
			testInstructionCB(t, fmt.Sprintf("RES %d, %s", bit, name), 0x80+offset, func(t *testing.T, instruction Instruction) {
				cpu.HL.SetUint16(0xC000)
				cpu.writeIndex(index, 0xFF)
				randomizeFlags()
				f := cpu.F
				instruction.Execute(cpu, nil)

				if got := cpu.readIndex(index); got != 0xFF&^(1<<bit) {
					t.Errorf("expected bit %d to be reset, got %08b", bit, got)
				}
				if cpu.F != f {
					t.Error("expected flags to be unaffected")
				}
			})
			testInstructionCB(t, fmt.Sprintf("SET %d, %s", bit, name), 0xC0+offset, func(t *testing.T, instruction Instruction) {
				cpu.HL.SetUint16(0xC000)
				cpu.writeIndex(index, 0x00)
				instruction.Execute(cpu, nil)

				if got := cpu.readIndex(index); got != 1<<bit {
					t.Errorf("expected only bit %d to be set, got %08b", bit, got)
				}
			})
		}
	}
}
