// Package bits provides helpers for reading single bits of a byte.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Pixel tests the i-th pixel of a sprite row, where pixel 0 is the
// most significant bit.
func Pixel(row, i uint8) bool {
	return Test(row, 7-i)
}
