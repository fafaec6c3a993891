package ram

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gochip8/internal/types"
)

func TestNewRAM_Font(t *testing.T) {
	r := NewRAM()
	for i, b := range Font {
		if got := r.Read(uint16(i)); got != b {
			t.Errorf("expected font byte %d to be 0x%02X, got 0x%02X", i, b, got)
		}
	}
	if got := r.Read(uint16(len(Font))); got != 0 {
		t.Errorf("expected byte after font to be 0, got 0x%02X", got)
	}
}

func TestRAM_LoadROM(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"empty", 0, ErrROMEmpty},
		{"one byte", 1, nil},
		{"exactly max", MaxProgramSize, nil},
		{"one over max", MaxProgramSize + 1, ErrROMTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRAM()
			rom := make([]byte, tt.size)
			for i := range rom {
				rom[i] = 0xAA
			}

			err := r.LoadROM(rom)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if tt.wantErr != nil {
				if got := r.Read(ProgramStart); got != 0 {
					t.Errorf("expected rejected rom to leave memory untouched, got 0x%02X", got)
				}
				return
			}

			if got := r.Read(ProgramStart + uint16(tt.size) - 1); got != 0xAA {
				t.Errorf("expected last rom byte 0xAA, got 0x%02X", got)
			}
			for i, b := range Font {
				if r.Read(uint16(i)) != b {
					t.Fatalf("font overwritten at %d", i)
				}
			}
		})
	}
}

func TestRAM_Wrap(t *testing.T) {
	r := NewRAM()
	r.Write(0x1055, 0x42)
	if got := r.Read(0x055); got != 0x42 {
		t.Errorf("expected write to wrap to 0x055, got 0x%02X", got)
	}

	r.Write(0xFFF, 0x12)
	if got := r.Read16(0xFFF); got != 0x12F0 {
		t.Errorf("expected word to wrap onto the font, got 0x%04X", got)
	}
}

func TestRAM_FontReadOnly(t *testing.T) {
	r := NewRAM()
	for a := uint16(FontStart); a < FontEnd; a++ {
		r.Write(a, 0x00)
		r.Write(a+Size, 0x00)
	}
	for i, b := range Font {
		if got := r.Read(uint16(i)); got != b {
			t.Errorf("expected font byte %d to stay 0x%02X, got 0x%02X", i, b, got)
		}
	}

	r.Write(FontEnd, 0x99)
	if got := r.Read(FontEnd); got != 0x99 {
		t.Errorf("expected the byte after the font to be writable, got 0x%02X", got)
	}
}

func TestRAM_LoadRestoresFont(t *testing.T) {
	raw := make([]byte, Size)
	raw[0x300] = 0x77 // font bytes left zero

	s := types.NewState()
	s.WriteData(raw)
	loaded, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	r := NewRAM()
	r.Load(loaded)
	if got := r.Read(0x300); got != 0x77 {
		t.Errorf("expected 0x77 at 0x300, got 0x%02X", got)
	}
	if got := r.Read(0x000); got != Font[0] {
		t.Errorf("expected the font to be restored, got 0x%02X", got)
	}
}

func TestGlyphAddress(t *testing.T) {
	for d := uint8(0); d < 16; d++ {
		if got := GlyphAddress(d); got != uint16(d)*5 {
			t.Errorf("expected glyph %X at %d, got %d", d, d*5, got)
		}
	}
	if got := GlyphAddress(0x1A); got != 0xA*5 {
		t.Errorf("expected high nibble to be ignored, got %d", got)
	}
}
