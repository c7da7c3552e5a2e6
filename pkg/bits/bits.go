// Package bits provides helpers for single bits of a byte.
package bits

// Val returns the bit at index i of b, as 0 or 1.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset returns b with the bit at index i cleared.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set returns b with the bit at index i set.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether the bit at index i of b is set.
func Test(b, i uint8) bool {
	return Val(b, i) == 1
}
