package cpu

import (
	"testing"

	"github.com/thelolagemann/gochip8/internal/ram"
)

func TestInstruction_StoreLoadRegisters(t *testing.T) {
	c := newTestCPU(t, 0xF355, 0xA300, 0xF365)
	c.I = 0x300
	c.V[0], c.V[1], c.V[2], c.V[3], c.V[4] = 0x10, 0x20, 0x30, 0x40, 0x50

	step(t, c, 1)
	if c.I != 0x304 {
		t.Errorf("expected I to be 0x304 after store, got 0x%03X", c.I)
	}
	for i, expected := range []uint8{0x10, 0x20, 0x30, 0x40, 0x00} {
		if got := c.ram.Read(0x300 + uint16(i)); got != expected {
			t.Errorf("expected 0x%02X at 0x%03X, got 0x%02X", expected, 0x300+i, got)
		}
	}

	original := c.V
	c.V = [NumRegisters]uint8{}
	step(t, c, 2)

	if c.V != ([NumRegisters]uint8{0x10, 0x20, 0x30, 0x40}) {
		t.Errorf("expected V0-V3 restored, got %v", c.V)
	}
	if c.V[4] == original[4] {
		t.Errorf("expected V4 not to be loaded")
	}
	if c.I != 0x304 {
		t.Errorf("expected I to be 0x304 after load, got 0x%03X", c.I)
	}
}

func TestInstruction_StoreRegistersWraps(t *testing.T) {
	c := newTestCPU(t, 0xF155)
	c.I = 0xFFF
	c.V[0], c.V[1] = 0xAA, 0xBB
	step(t, c, 1)

	if c.ram.Read(0xFFF) != 0xAA {
		t.Errorf("expected 0xAA at 0xFFF, got 0x%02X", c.ram.Read(0xFFF))
	}
	// the wrapped write lands in the font and is dropped
	if c.ram.Read(0x000) != ram.Font[0] {
		t.Errorf("expected font byte 0x%02X at 0x000, got 0x%02X", ram.Font[0], c.ram.Read(0x000))
	}
}

func TestInstruction_FontIsReadOnly(t *testing.T) {
	// LD I, 0x000; LD [I], V4; LD I, 0x010; LD B, V4
	c := newTestCPU(t, 0xA000, 0xF455, 0xA010, 0xF433)
	c.V[0], c.V[1], c.V[2], c.V[3], c.V[4] = 1, 2, 3, 4, 5
	step(t, c, 2)
	if c.I != 0x005 {
		t.Errorf("expected I to be 0x005, got 0x%03X", c.I)
	}

	step(t, c, 2)
	for i, expected := range ram.Font {
		if got := c.ram.Read(uint16(i)); got != expected {
			t.Errorf("expected font byte 0x%02X at 0x%03X, got 0x%02X", expected, i, got)
		}
	}
}

func TestInstruction_BCD(t *testing.T) {
	for _, tt := range []struct {
		value    uint8
		expected [3]uint8
	}{
		{0, [3]uint8{0, 0, 0}},
		{7, [3]uint8{0, 0, 7}},
		{42, [3]uint8{0, 4, 2}},
		{156, [3]uint8{1, 5, 6}},
		{255, [3]uint8{2, 5, 5}},
	} {
		c := newTestCPU(t, 0xF533)
		c.I = 0x400
		c.V[5] = tt.value
		step(t, c, 1)

		got := [3]uint8{c.ram.Read(0x400), c.ram.Read(0x401), c.ram.Read(0x402)}
		if got != tt.expected {
			t.Errorf("%d: expected %v, got %v", tt.value, tt.expected, got)
		}
		if c.I != 0x400 {
			t.Errorf("%d: expected I to be unchanged, got 0x%03X", tt.value, c.I)
		}
	}
}

func TestInstruction_LoadGlyph(t *testing.T) {
	c := newTestCPU(t, 0xF229)
	c.V[2] = 0x1B // low nibble selects glyph B
	step(t, c, 1)

	if c.I != ram.GlyphAddress(0xB) || c.I != 55 {
		t.Errorf("expected I to be 55, got %d", c.I)
	}
}

func TestInstruction_LoadIndex(t *testing.T) {
	c := newTestCPU(t, 0xA123)
	step(t, c, 1)

	if c.I != 0x123 {
		t.Errorf("expected I to be 0x123, got 0x%03X", c.I)
	}
}

func TestInstruction_WaitForKey(t *testing.T) {
	c := newTestCPU(t, 0xF30A)

	// no key held, the instruction is fetched again
	step(t, c, 3)
	if c.PC != 0x200 || !c.WaitingForKey() {
		t.Fatalf("expected PC to stay at 0x200 while waiting, got 0x%03X", c.PC)
	}

	// pressing captures the key, but waits for the release
	c.keys.Press(0x7)
	step(t, c, 1)
	if c.PC != 0x200 {
		t.Errorf("expected PC to stay at 0x200 while the key is held, got 0x%03X", c.PC)
	}
	if c.V[3] != 0 {
		t.Errorf("expected V3 to be unwritten while the key is held, got %d", c.V[3])
	}

	// another key pressed in the meantime does not replace the capture
	c.keys.Press(0x2)
	c.keys.Release(0x7)
	step(t, c, 1)

	if c.V[3] != 0x7 {
		t.Errorf("expected V3 to be 7, got %d", c.V[3])
	}
	if c.PC != 0x202 || c.WaitingForKey() {
		t.Errorf("expected key wait to complete, got PC 0x%03X", c.PC)
	}
}

func TestInstruction_WaitForKeyOnPress(t *testing.T) {
	c := newTestCPU(t, 0xF30A)
	c.Quirks.WaitForRelease = false

	step(t, c, 1)
	if c.PC != 0x200 {
		t.Fatalf("expected PC to stay at 0x200, got 0x%03X", c.PC)
	}

	c.keys.Press(0xC)
	step(t, c, 1)
	if c.V[3] != 0xC || c.PC != 0x202 {
		t.Errorf("expected V3 to be 0xC and PC 0x202, got %d and 0x%03X", c.V[3], c.PC)
	}
}
