package cpu

import "testing"

type aluTest struct {
	vx, vy   uint8
	expected uint8
	flag     uint8
}

// testALU runs opcode 8XYN with X=1, Y=2 for every case, and again
// with X=F to check that the flag wins over the result.
func testALU(t *testing.T, name string, n uint16, quirks Quirks, tests []aluTest) {
	t.Run(name, func(t *testing.T) {
		for _, tt := range tests {
			c := newTestCPU(t, 0x8120|n)
			c.Quirks = quirks
			c.V[1], c.V[2] = tt.vx, tt.vy
			step(t, c, 1)

			if c.V[1] != tt.expected {
				t.Errorf("(%d, %d): expected V1 to be %d, got %d", tt.vx, tt.vy, tt.expected, c.V[1])
			}
			if c.V[0xF] != tt.flag {
				t.Errorf("(%d, %d): expected VF to be %d, got %d", tt.vx, tt.vy, tt.flag, c.V[0xF])
			}
			if c.V[2] != tt.vy && !quirks.ShiftInPlace {
				t.Errorf("(%d, %d): expected VY to be unchanged, got %d", tt.vx, tt.vy, c.V[2])
			}

			c = newTestCPU(t, 0x8F20|n)
			c.Quirks = quirks
			c.V[0xF], c.V[2] = tt.vx, tt.vy
			step(t, c, 1)

			if c.V[0xF] != tt.flag {
				t.Errorf("(%d, %d) into VF: expected VF to hold flag %d, got %d", tt.vx, tt.vy, tt.flag, c.V[0xF])
			}
		}
	})
}

func TestInstruction_ALUFlags(t *testing.T) {
	testALU(t, "ADD Vx, Vy", 0x4, DefaultQuirks, []aluTest{
		{0, 0, 0, 0},
		{255, 255, 254, 1},
		{255, 0, 255, 0},
		{0, 255, 255, 0},
		{200, 56, 0, 1},
		{100, 50, 150, 0},
	})
	testALU(t, "SUB Vx, Vy", 0x5, DefaultQuirks, []aluTest{
		{0, 0, 0, 1},
		{255, 255, 0, 1},
		{255, 0, 255, 1},
		{0, 255, 1, 0},
		{100, 50, 50, 1},
		{50, 100, 206, 0},
	})
	testALU(t, "SHR Vx, Vy", 0x6, DefaultQuirks, []aluTest{
		{0, 0, 0, 0},
		{255, 255, 127, 1},
		{255, 0, 0, 0},
		{0, 255, 127, 1},
		{0, 0x42, 0x21, 0},
	})
	testALU(t, "SUBN Vx, Vy", 0x7, DefaultQuirks, []aluTest{
		{0, 0, 0, 1},
		{255, 255, 0, 1},
		{255, 0, 1, 0},
		{0, 255, 255, 1},
		{50, 100, 50, 1},
	})
	testALU(t, "SHL Vx, Vy", 0xE, DefaultQuirks, []aluTest{
		{0, 0, 0, 0},
		{255, 255, 254, 1},
		{255, 0, 0, 0},
		{0, 255, 254, 1},
		{0, 0x41, 0x82, 0},
	})
}

func TestInstruction_ShiftInPlace(t *testing.T) {
	quirks := Quirks{ShiftInPlace: true}
	testALU(t, "SHR Vx", 0x6, quirks, []aluTest{
		{0x03, 0xF0, 0x01, 1},
		{0x80, 0x01, 0x40, 0},
	})
	testALU(t, "SHL Vx", 0xE, quirks, []aluTest{
		{0x81, 0x00, 0x02, 1},
		{0x01, 0xFF, 0x02, 0},
	})
}

func TestInstruction_Logic(t *testing.T) {
	for _, tt := range []struct {
		name     string
		n        uint16
		expected uint8
	}{
		{"LD Vx, Vy", 0x0, 0x0F},
		{"OR Vx, Vy", 0x1, 0x3F},
		{"AND Vx, Vy", 0x2, 0x0C},
		{"XOR Vx, Vy", 0x3, 0x33},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, 0x8120|tt.n)
			c.V[1], c.V[2], c.V[0xF] = 0x3C, 0x0F, 0x77
			step(t, c, 1)

			if c.V[1] != tt.expected {
				t.Errorf("expected V1 to be 0x%02X, got 0x%02X", tt.expected, c.V[1])
			}
			if c.V[0xF] != 0x77 {
				t.Errorf("expected VF to be untouched, got 0x%02X", c.V[0xF])
			}
		})
	}
}

func TestInstruction_AddImmediate(t *testing.T) {
	c := newTestCPU(t, 0x71FF)
	c.V[1] = 0x02
	c.V[0xF] = 0x55
	step(t, c, 1)

	if c.V[1] != 0x01 {
		t.Errorf("expected V1 to wrap to 0x01, got 0x%02X", c.V[1])
	}
	if c.V[0xF] != 0x55 {
		t.Errorf("expected VF to be untouched, got 0x%02X", c.V[0xF])
	}
}

func TestInstruction_AddIndex(t *testing.T) {
	c := newTestCPU(t, 0xF31E)
	c.I = 0x0FFF
	c.V[3] = 0x02
	step(t, c, 1)

	if c.I != 0x1001 {
		t.Errorf("expected I to be 0x1001, got 0x%04X", c.I)
	}
	if c.V[0xF] != 0 {
		t.Errorf("expected VF to be untouched, got %d", c.V[0xF])
	}
}
