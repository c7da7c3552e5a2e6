package types

// HighPage is the base address of the high page. LDH and the
// LD (C) forms address memory as HighPage + an 8-bit offset.
const HighPage uint16 = 0xFF00

// RestartVector is one of the eight fixed low-memory addresses
// that the RST instructions jump to.
type RestartVector = uint16

const (
	RST00 RestartVector = 0x00
	RST08 RestartVector = 0x08
	RST10 RestartVector = 0x10
	RST18 RestartVector = 0x18
	RST20 RestartVector = 0x20
	RST28 RestartVector = 0x28
	RST30 RestartVector = 0x30
	RST38 RestartVector = 0x38
)

// RestartVectors holds the RST targets in opcode order
// (0xC7, 0xCF, ... 0xFF).
var RestartVectors = [8]RestartVector{RST00, RST08, RST10, RST18, RST20, RST28, RST30, RST38}
