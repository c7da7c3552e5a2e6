package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplementedOpcode is matched by every error produced when
	// an opcode has no entry in the table of the current DecodeMode.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	// ErrInvalidFlag is returned when a flag is named that is not
	// one of Z, N, H or C.
	ErrInvalidFlag = errors.New("invalid flag reference")
)

// UnimplementedOpcodeError describes an opcode the decoder
// could not resolve.
type UnimplementedOpcodeError struct {
	Opcode uint8
	Mode   DecodeMode
	PC     uint16 // address the opcode was fetched from
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Mode == DecodeExtended {
		return fmt.Sprintf("unimplemented extended opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Is reports whether target is ErrUnimplementedOpcode.
func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}
