package cpu

// DecodeMode selects which opcode table the decoder resolves
// the next fetched byte against.
type DecodeMode uint8

const (
	// DecodePrimary resolves opcodes against InstructionSet.
	DecodePrimary DecodeMode = iota
	// DecodeExtended resolves opcodes against InstructionSetCB. It is
	// entered by the 0xCB prefix and lasts for exactly one opcode.
	DecodeExtended
)

func (m DecodeMode) String() string {
	if m == DecodeExtended {
		return "extended"
	}
	return "primary"
}

// prefixCB is the opcode that switches the decoder to DecodeExtended.
const prefixCB = 0xCB

// instructionLengths holds the length in bytes (opcode included) of
// every primary opcode. A length of 0 marks an opcode that does not
// exist on the LR35902. Every extended opcode is a single byte after
// the prefix, so there is no table for them.
var instructionLengths = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1, // 0x00
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x10
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x20
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x40
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x50
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x60
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x70
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x80
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x90
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xA0
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xB0
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 1, 3, 3, 2, 1, // 0xC0
	1, 1, 3, 0, 3, 1, 2, 1, 1, 1, 3, 0, 3, 0, 2, 1, // 0xD0
	2, 1, 1, 0, 0, 1, 2, 1, 2, 1, 3, 0, 0, 0, 2, 1, // 0xE0
	2, 1, 1, 1, 0, 1, 2, 1, 2, 1, 3, 1, 0, 0, 2, 1, // 0xF0
}

// Decode returns the Instruction for opcode in the given mode. Opcodes
// without an entry return an *UnimplementedOpcodeError.
func Decode(opcode uint8, mode DecodeMode) (Instruction, error) {
	var instruction Instruction
	if mode == DecodeExtended {
		instruction = InstructionSetCB[opcode]
	} else {
		instruction = InstructionSet[opcode]
	}

	if !instruction.defined() {
		return Instruction{}, &UnimplementedOpcodeError{Opcode: opcode, Mode: mode}
	}
	return instruction, nil
}

// OperandLength returns the number of operand bytes (0, 1 or 2) that
// follow opcode in the given mode.
func OperandLength(opcode uint8, mode DecodeMode) (uint8, error) {
	instruction, err := Decode(opcode, mode)
	if err != nil {
		return 0, err
	}
	return instruction.operands, nil
}

// decoder holds the decode mode between fetched opcode bytes.
type decoder struct {
	mode DecodeMode
}

// next resolves opcode against the table of the current mode, then
// moves to the following mode: the CB prefix switches Primary to
// Extended, and any extended opcode switches back to Primary.
func (d *decoder) next(opcode uint8) (Instruction, error) {
	instruction, err := Decode(opcode, d.mode)

	switch {
	case d.mode == DecodeExtended:
		d.mode = DecodePrimary
	case err == nil && opcode == prefixCB:
		d.mode = DecodeExtended
	}

	return instruction, err
}

// reset returns the decoder to DecodePrimary.
func (d *decoder) reset() {
	d.mode = DecodePrimary
}
