// Package ram provides the 4 KiB program store of the machine. The
// lowest 80 bytes hold the built-in font, and programs are loaded at
// ProgramStart.
//
//	0x000-0x04F  font glyphs 0-F (5 bytes each)
//	0x050-0x1FF  reserved
//	0x200-0xFFF  program space
package ram

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gochip8/internal/types"
)

const (
	// Size is the number of addressable bytes.
	Size = 0x1000
	// ProgramStart is the address programs are loaded at, and where
	// execution begins.
	ProgramStart = 0x200
	// MaxProgramSize is the largest program that fits in memory.
	MaxProgramSize = Size - ProgramStart
	// addressMask wraps an address into the addressable range.
	addressMask = Size - 1
)

var (
	// ErrROMTooLarge is returned when a program does not fit in memory.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrROMEmpty is returned when a program contains no bytes.
	ErrROMEmpty = errors.New("rom is empty")
)

// RAM represents the program store.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new RAM with the font table loaded.
func NewRAM() *RAM {
	r := &RAM{}
	r.Reset()
	return r
}

// Reset clears memory and reloads the font table.
func (r *RAM) Reset() {
	r.data = [Size]uint8{}
	copy(r.data[FontStart:], Font[:])
}

// Read returns the value at the given address. Addresses wrap at
// Size, so every read is in bounds.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&addressMask]
}

// Write writes the value to the given address, wrapping at Size.
// Writes to the font region are dropped.
func (r *RAM) Write(address uint16, value uint8) {
	address &= addressMask
	if address < FontEnd {
		return
	}
	r.data[address] = value
}

// Read16 reads a big-endian word at the given address. The second
// byte wraps to address 0 when address is the last byte.
func (r *RAM) Read16(address uint16) uint16 {
	return uint16(r.Read(address))<<8 | uint16(r.Read(address+1))
}

// LoadROM copies the program verbatim to ProgramStart. The font region
// is never touched, and nothing is written if the program is rejected.
func (r *RAM) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return ErrROMEmpty
	}
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, max %d", ErrROMTooLarge, len(rom), MaxProgramSize)
	}

	copy(r.data[ProgramStart:], rom)
	return nil
}

// Bytes returns a copy of memory.
func (r *RAM) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, r.data[:])
	return b
}

var _ types.Stater = (*RAM)(nil)

// Load loads the contents of memory from the state. The font is
// always restored from Font.
func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data[:])
	copy(r.data[FontStart:], Font[:])
}

// Save writes the contents of memory to the state.
func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data[:])
}
