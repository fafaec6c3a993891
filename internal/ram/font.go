package ram

const (
	// FontStart is the address of the first glyph.
	FontStart = 0x000
	// GlyphSize is the number of bytes (rows) in one glyph.
	GlyphSize = 5
	// FontEnd is the address after the last glyph. Memory below it is
	// read-only to programs.
	FontEnd = FontStart + 16*GlyphSize
)

// Font holds the 4x5 hexadecimal digit sprites 0-F. Each row uses
// the upper nibble only.
var Font = [16 * GlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the glyph for the low nibble
// of digit.
func GlyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0xF)*GlyphSize
}
