package cpu

import "testing"

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		a      uint8
		carry  bool
		want   uint8
		flags  flagState
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, flagState{c: true}},
		{"RLCA zero", 0x07, 0x00, false, 0x00, flagState{z: true}},
		{"RRCA", 0x0F, 0x01, false, 0x80, flagState{c: true}},
		{"RLA", 0x17, 0x95, true, 0x2B, flagState{c: true}},
		{"RLA to zero", 0x17, 0x80, false, 0x00, flagState{z: true, c: true}},
		{"RRCA zero", 0x0F, 0x00, false, 0x00, flagState{z: true}},
		{"RRA to zero", 0x1F, 0x01, false, 0x00, flagState{z: true, c: true}},
		{"RRA", 0x1F, 0x81, false, 0x40, flagState{c: true}},
		{"RRA carry in", 0x1F, 0x00, true, 0x80, flagState{}},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, instruction Instruction) {
			cpu.A = tt.a
			cpu.setFlags(true, true, true, tt.carry)
			instruction.Execute(cpu, nil)

			if cpu.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, cpu.A)
			}
			expectFlags(t, tt.flags)
		})
	}
}

func TestInstruction_RotateCB(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		value  uint8
		carry  bool
		want   uint8
		flags  flagState
	}{
		{"RLC B", 0x00, 0x85, false, 0x0B, flagState{c: true}},
		{"RLC B zero", 0x00, 0x00, false, 0x00, flagState{z: true}},
		{"RRC C", 0x09, 0x01, false, 0x80, flagState{c: true}},
		{"RL C", 0x11, 0x80, false, 0x00, flagState{z: true, c: true}},
		{"RL C carry in", 0x11, 0x11, true, 0x23, flagState{}},
		{"RR D", 0x1A, 0x01, false, 0x00, flagState{z: true, c: true}},
		{"RR D carry in", 0x1A, 0x8A, true, 0xC5, flagState{}},
	}
	for _, tt := range tests {
		testInstructionCB(t, tt.name, tt.opcode, func(t *testing.T, instruction Instruction) {
			index := tt.opcode & 0x07
			cpu.writeIndex(index, tt.value)
			cpu.setFlags(true, true, true, tt.carry)
			instruction.Execute(cpu, nil)

			if got := cpu.readIndex(index); got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
			expectFlags(t, tt.flags)
		})
	}
}

func TestInstruction_RotateMemory(t *testing.T) {
	// 0xCB 0x16 - RL (HL)
	testInstructionCB(t, "RL (HL)", 0x16, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0xC000)
		memory.Write(0xC000, 0x40)
		cpu.setFlag(FlagCarry)
		instruction.Execute(cpu, nil)

		if memory.Read(0xC000) != 0x81 {
			t.Errorf("expected 0x81 at 0xC000, got 0x%02X", memory.Read(0xC000))
		}
		expectFlags(t, flagState{})
	})
}
