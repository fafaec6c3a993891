package cpu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/internal/ram"
	"github.com/thelolagemann/gochip8/internal/timer"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/internal/video"
)

// fixedRandom always returns the same value.
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	return int(f) % n
}

// newTestCPU returns a CPU with the given opcodes loaded at the start
// of the program area.
func newTestCPU(t *testing.T, opcodes ...uint16) *CPU {
	t.Helper()
	mem := ram.NewRAM()
	rom := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		rom = append(rom, uint8(op>>8), uint8(op))
	}
	if len(rom) > 0 {
		if err := mem.LoadROM(rom); err != nil {
			t.Fatal(err)
		}
	}
	c := NewCPU(mem, video.NewFramebuffer(), keypad.New(), timer.NewController())
	c.SetRandom(fixedRandom(0xFF))
	return c
}

// step executes n instructions, failing the test on a fault.
func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("unexpected fault: %v", err)
		}
	}
}

func TestCPU_Fetch(t *testing.T) {
	c := newTestCPU(t, 0x6A42)
	step(t, c, 1)

	if c.V[0xA] != 0x42 {
		t.Errorf("expected VA to be 0x42, got 0x%02X", c.V[0xA])
	}
	if c.PC != 0x202 {
		t.Errorf("expected PC to be 0x202, got 0x%03X", c.PC)
	}
	if c.LastInstruction().Opcode != 0x6A42 {
		t.Errorf("expected last instruction 6A42, got %04X", c.LastInstruction().Opcode)
	}
}

func TestCPU_FetchWrapsAtEndOfMemory(t *testing.T) {
	c := newTestCPU(t)
	c.ram.Write(0xFFE, 0x1A)
	c.ram.Write(0xFFF, 0xBC)
	c.PC = 0xFFE

	step(t, c, 1)

	if c.PC != 0xABC {
		t.Errorf("expected PC to be 0xABC, got 0x%03X", c.PC)
	}

	// CLS at the last instruction slot
	c.ram.Write(0xFFE, 0x00)
	c.ram.Write(0xFFF, 0xE0)
	c.PC = 0xFFE
	step(t, c, 1)
	if c.PC != 0x000 {
		t.Errorf("expected PC to wrap to 0x000, got 0x%03X", c.PC)
	}
}

func TestCPU_UnknownOpcodes(t *testing.T) {
	for _, op := range []uint16{0x0123, 0x5121, 0x9AB3, 0x8128, 0x812F, 0xE1FF, 0xF1FF} {
		c := newTestCPU(t, op)
		c.V[1] = 0x10
		before := c.Registers

		step(t, c, 1)

		if c.V != before.V || c.I != before.I {
			t.Errorf("%04X: expected no register changes", op)
		}
		if c.PC != 0x202 {
			t.Errorf("%04X: expected PC to advance to 0x202, got 0x%03X", op, c.PC)
		}
	}
}

func TestCPU_Random(t *testing.T) {
	c := newTestCPU(t, 0xC30F)
	c.SetRandom(fixedRandom(0xA5))
	step(t, c, 1)

	if c.V[3] != 0x05 {
		t.Errorf("expected V3 to be 0x05, got 0x%02X", c.V[3])
	}
}

func TestCPU_Timers(t *testing.T) {
	c := newTestCPU(t, 0x6105, 0xF115, 0xF118, 0xF207)
	step(t, c, 4)

	if c.timers.Delay() != 5 || c.timers.Sound() != 5 {
		t.Errorf("expected timers to be 5, got delay=%d sound=%d", c.timers.Delay(), c.timers.Sound())
	}
	if !c.timers.AudioActive() {
		t.Errorf("expected audio to be active")
	}
	if c.V[2] != 5 {
		t.Errorf("expected V2 to be 5, got %d", c.V[2])
	}
}

func TestCPU_State(t *testing.T) {
	c := newTestCPU(t, 0x2300)
	c.V[4] = 0x44
	c.I = 0x345
	step(t, c, 1)

	s := types.NewState()
	c.Save(s)

	loaded, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	c2 := newTestCPU(t)
	c2.Load(loaded)

	if c2.Registers != c.Registers {
		t.Errorf("expected registers %+v, got %+v", c.Registers, c2.Registers)
	}
	if c2.Depth() != 1 || c2.Peek(0) != 0x202 {
		t.Errorf("expected stack [0x202], got depth %d", c2.Depth())
	}
}

func TestCPU_StateKeepsKeyWait(t *testing.T) {
	c := newTestCPU(t, 0xF30A)
	step(t, c, 1)
	if !c.WaitingForKey() {
		t.Fatalf("expected CPU to wait for a key")
	}

	s := types.NewState()
	c.Save(s)
	loaded, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	c2 := newTestCPU(t)
	c2.Load(loaded)

	if !c2.WaitingForKey() {
		t.Errorf("expected restored CPU to wait for a key")
	}
	if c2.PC != 0x200 {
		t.Errorf("expected PC to be 0x200, got 0x%03X", c2.PC)
	}
}

func TestCPU_StateMasksPC(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0x301
	s := types.NewState()
	c.Save(s)
	loaded, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	c2 := newTestCPU(t)
	c2.Load(loaded)

	if c2.PC != 0x300 {
		t.Errorf("expected PC to be 0x300, got 0x%03X", c2.PC)
	}
}

func TestFault_Unwrap(t *testing.T) {
	var err error = &Fault{PC: 0x200, Opcode: 0x00EE, Err: ErrStackUnderflow}

	if !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected fault to wrap ErrStackUnderflow")
	}
	if err.Error() != "cpu: 00EE at 0x200: stack underflow" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
