package cpu

import "fmt"

// cbOperation is one of the eight rotate and shift operations held in
// rows 0x00 - 0x3F of the extended table, in encoding order.
type cbOperation struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}

var cbOperations = [8]cbOperation{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	generateRotateShiftInstructions()
	generateBitInstructions()
}

// generateRotateShiftInstructions generates the rotate, shift and
// swap instructions for every operand.
//
//	0x00 RLC B
//	0x01 RLC C
//	....
//	0x3F SRL A
func generateRotateShiftInstructions() {
	for i, operation := range cbOperations {
		op := operation
		for j := uint8(0); j < 8; j++ {
			index := j
			DefineInstructionCB(uint8(i)*8+index, fmt.Sprintf("%s %s", op.name, registerNameMap[index]), func(c *CPU, operands []byte) {
				c.writeIndex(index, op.fn(c, c.readIndex(index)))
			})
		}
	}
}

// generateBitInstructions generates BIT, RES and SET for every bit
// and operand.
//
//	0x40 BIT 0, B ... 0x7F BIT 7, A
//	0x80 RES 0, B ... 0xBF RES 7, A
//	0xC0 SET 0, B ... 0xFF SET 7, A
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		for j := uint8(0); j < 8; j++ {
			bit, index := b, j
			offset := bit*8 + index
			name := registerNameMap[index]

			DefineInstructionCB(0x40+offset, fmt.Sprintf("BIT %d, %s", bit, name), func(c *CPU, operands []byte) {
				c.testBit(c.readIndex(index), bit)
			})
			DefineInstructionCB(0x80+offset, fmt.Sprintf("RES %d, %s", bit, name), func(c *CPU, operands []byte) {
				c.writeIndex(index, resetBit(c.readIndex(index), bit))
			})
			DefineInstructionCB(0xC0+offset, fmt.Sprintf("SET %d, %s", bit, name), func(c *CPU, operands []byte) {
				c.writeIndex(index, setBit(c.readIndex(index), bit))
			})
		}
	}
}
