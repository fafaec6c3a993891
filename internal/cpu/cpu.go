package cpu

import (
	"fmt"
	"math/rand"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/internal/ram"
	"github.com/thelolagemann/gochip8/internal/timer"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/internal/video"
	"github.com/thelolagemann/gochip8/pkg/log"
)

const (
	// DefaultSpeed is the default number of instructions executed
	// per second.
	DefaultSpeed = 600

	addressMask = 0x0FFF
	// pcMask keeps PC even and inside memory, so every fetch reads a
	// whole instruction.
	pcMask = 0x0FFE
)

// Quirks select between the behaviours of different interpreters for
// the few instructions they disagree on.
type Quirks struct {
	// ShiftInPlace makes 8XY6 and 8XYE shift VX instead of VY, as
	// CHIP-48 and SUPER-CHIP did.
	ShiftInPlace bool
	// WaitForRelease makes FX0A complete once the captured key has
	// been released, rather than as soon as it is pressed.
	WaitForRelease bool
}

// DefaultQuirks are the quirks used unless otherwise configured.
var DefaultQuirks = Quirks{WaitForRelease: true}

// Random is the source of CXNN. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Fault is returned by Step when an instruction could not be
// executed. The instruction has no effect, and PC is left pointing
// at it.
type Fault struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %04X at 0x%03X: %v", f.Opcode, f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// CPU is the fetch/decode/execute engine. It owns the register file
// and call stack, and operates on the memory, framebuffer, keypad and
// timers it was created with.
type CPU struct {
	Registers
	Stack

	Quirks Quirks

	ram    *ram.RAM
	video  *video.Framebuffer
	keys   *keypad.State
	timers *timer.Controller
	rand   Random
	log    log.Logger

	// FX0A state. waiting is set once a key has been captured.
	waiting bool
	waitKey keypad.Key
	blocked bool

	last Instruction
}

// NewCPU creates a new CPU, with PC pointing at the start of the
// program area.
func NewCPU(mem *ram.RAM, fb *video.Framebuffer, keys *keypad.State, timers *timer.Controller) *CPU {
	c := &CPU{
		Quirks: DefaultQuirks,
		ram:    mem,
		video:  fb,
		keys:   keys,
		timers: timers,
		rand:   rand.New(rand.NewSource(rand.Int63())),
		log:    log.NewNullLogger(),
	}
	c.Reset()
	return c
}

// SetRandom replaces the source used by CXNN.
func (c *CPU) SetRandom(r Random) {
	c.rand = r
}

// SetLogger sets the logger used to report unknown opcodes.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// Reset clears the registers, stack and any pending key wait.
func (c *CPU) Reset() {
	c.Registers = Registers{PC: ram.ProgramStart}
	c.Stack = Stack{}
	c.waiting = false
	c.waitKey = 0
	c.blocked = false
	c.last = Instruction{}
}

// LastInstruction returns the most recently executed instruction.
func (c *CPU) LastInstruction() Instruction {
	return c.last
}

// WaitingForKey returns true if the last instruction was a key wait
// that has yet to complete.
func (c *CPU) WaitingForKey() bool {
	return c.blocked
}

// fetch reads the opcode at PC, most significant byte first, and
// advances PC past it.
func (c *CPU) fetch() uint16 {
	opcode := c.ram.Read16(c.PC)
	c.PC = (c.PC + 2) & pcMask
	return opcode
}

// Step fetches, decodes and executes a single instruction.
func (c *CPU) Step() error {
	pc := c.PC
	ins := Decode(c.fetch())
	c.last = ins
	c.blocked = false

	if err := c.execute(ins); err != nil {
		c.PC = pc
		return &Fault{PC: pc, Opcode: ins.Opcode, Err: err}
	}
	return nil
}

// skip skips the next instruction.
func (c *CPU) skip() {
	c.PC = (c.PC + 2) & pcMask
}

// rewind makes the current instruction execute again.
func (c *CPU) rewind() {
	c.PC = (c.PC - 2) & pcMask
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	for i := range c.V {
		c.V[i] = s.Read8()
	}
	c.I = s.Read16()
	c.PC = s.Read16() & pcMask
	for i := range c.entries {
		c.entries[i] = s.Read16() & pcMask
	}
	c.sp = s.Read8()
	if int(c.sp) > StackSize {
		c.sp = StackSize
	}
	c.waiting = s.ReadBool()
	c.waitKey = s.Read8() & 0xF
	c.blocked = s.ReadBool()
}

func (c *CPU) Save(s *types.State) {
	for _, v := range c.V {
		s.Write8(v)
	}
	s.Write16(c.I)
	s.Write16(c.PC)
	for _, e := range c.entries {
		s.Write16(e)
	}
	s.Write8(c.sp)
	s.WriteBool(c.waiting)
	s.Write8(c.waitKey)
	s.WriteBool(c.blocked)
}
