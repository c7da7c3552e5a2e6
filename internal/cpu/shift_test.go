package cpu

import "testing"

func TestInstruction_Shift(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		value  uint8
		want   uint8
		flags  flagState
	}{
		{"SLA B", 0x20, 0x81, 0x02, flagState{c: true}},
		{"SLA B zero", 0x20, 0x80, 0x00, flagState{z: true, c: true}},
		{"SRA C", 0x29, 0x81, 0xC0, flagState{c: true}},
		{"SRA C positive", 0x29, 0x42, 0x21, flagState{}},
		{"SRL D", 0x3A, 0x81, 0x40, flagState{c: true}},
		{"SRL D zero", 0x3A, 0x01, 0x00, flagState{z: true, c: true}},
		{"SWAP E", 0x33, 0x12, 0x21, flagState{}},
		{"SWAP E zero", 0x33, 0x00, 0x00, flagState{z: true}},
		{"SWAP A", 0x37, 0xF0, 0x0F, flagState{}},
		{"SWAP (HL)", 0x36, 0xAB, 0xBA, flagState{}},
	}
	for _, tt := range tests {
		testInstructionCB(t, tt.name, tt.opcode, func(t *testing.T, instruction Instruction) {
			index := tt.opcode & 0x07
			cpu.HL.SetUint16(0xC000)
			cpu.writeIndex(index, tt.value)
			cpu.setFlags(true, true, true, true)
			if tt.opcode>>3 != 6 {
				// SWAP clears C, the shifts set it from the value
				cpu.clearFlag(FlagCarry)
			}
			instruction.Execute(cpu, nil)

			if got := cpu.readIndex(index); got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
			expectFlags(t, tt.flags)
		})
	}
}
