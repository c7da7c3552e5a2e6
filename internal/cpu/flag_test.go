package cpu

import (
	"errors"
	"testing"
)

func TestFlag(t *testing.T) {
	resetCPU()

	t.Run("clear", func(t *testing.T) {
		for _, flag := range Flags {
			cpu.clearFlag(flag)
			if cpu.isFlagSet(flag) {
				t.Errorf("expected flag %s to be unset, got set", flag)
			}
		}
	})
	t.Run("set", func(t *testing.T) {
		for _, flag := range Flags {
			cpu.setFlag(flag)
			if !cpu.isFlagSet(flag) {
				t.Errorf("expected flag %s to be set, got unset", flag)
			}
		}
	})
	t.Run("independent", func(t *testing.T) {
		for _, flag := range Flags {
			cpu.F = 0
			cpu.setFlag(flag)
			for _, other := range Flags {
				if other != flag && cpu.isFlagSet(other) {
					t.Errorf("setting %s also set %s", flag, other)
				}
			}
		}
	})
	t.Run("setFlags", func(t *testing.T) {
		cpu.setFlags(true, false, true, false)
		if cpu.F != 0b1010_0000 {
			t.Errorf("expected F to be 10100000, got %08b", cpu.F)
		}
	})
	t.Run("shouldZeroFlag", func(t *testing.T) {
		cpu.shouldZeroFlag(0)
		if !cpu.Flag(FlagZero) {
			t.Error("expected Z to be set for 0")
		}
		cpu.shouldZeroFlag(1)
		if cpu.Flag(FlagZero) {
			t.Error("expected Z to be reset for 1")
		}
	})
}

func TestFlag_LowerNibble(t *testing.T) {
	// POP AF with 0xFF in the low byte
	loadProgram(t, 0x31, 0x00, 0xC0, 0xF1)
	memory.Write(0xC000, 0xFF)
	memory.Write(0xC001, 0x12)
	step(t, 2)

	if cpu.F != 0xF0 {
		t.Errorf("expected F to be 0xF0, got 0x%02X", cpu.F)
	}
	if cpu.A != 0x12 {
		t.Errorf("expected A to be 0x12, got 0x%02X", cpu.A)
	}

	// every ALU operation with random operands
	resetCPU()
	for i := 0; i < 0x100; i++ {
		for j := 0x80; j <= 0xBF; j++ {
			cpu.A, cpu.B = uint8(i), uint8(i*7)
			randomizeFlags()
			InstructionSet[j].Execute(cpu, nil)
			if cpu.F&^flagMask != 0 {
				t.Fatalf("%s: lower nibble of F set: %08b", InstructionSet[j].Name(), cpu.F)
			}
		}
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name string
		want Flag
	}{
		{"Z", FlagZero},
		{"zero", FlagZero},
		{"n", FlagSubtract},
		{"Subtract", FlagSubtract},
		{"H", FlagHalfCarry},
		{"half-carry", FlagHalfCarry},
		{" c ", FlagCarry},
		{"CARRY", FlagCarry},
	}
	for _, tt := range tests {
		got, err := ParseFlag(tt.name)
		if err != nil {
			t.Errorf("ParseFlag(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlag(%q): expected %s, got %s", tt.name, tt.want, got)
		}
	}

	for _, name := range []string{"", "X", "flag"} {
		if _, err := ParseFlag(name); !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("ParseFlag(%q): expected ErrInvalidFlag, got %v", name, err)
		}
	}
}

func TestFlag_String(t *testing.T) {
	want := "ZNHC"
	var got string
	for _, flag := range Flags {
		got += flag.String()
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
