package types

// Register represents an LR35902 Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, F, H, and L. The F register is
// special in that it is used to hold the flags, and only its upper nibble
// can ever be set.
type Register = uint8

// RegisterPair represents a pair of Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. A pair owns no
// storage of its own, it is a view over the two Registers it points to, with
// the High Register holding the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	lowMask uint8 // applied to the Low register on every write
}

// NewRegisterPair returns a RegisterPair over the given Registers.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair over the given Registers,
// where only the bits set in lowMask can be written to the Low register.
// It is used for AF, where the lower nibble of F always reads as 0.
func NewMaskedRegisterPair(high, low *Register, lowMask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: lowMask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the LR35902 CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns a zeroed register file with its
// four register pairs wired to the 8-bit registers.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	r.AF = NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
	return r
}
