// Package chip8 provides the CHIP-8 virtual machine. A Machine ties
// the CPU to its memory, framebuffer, keypad and timers, and runs it
// one 60 Hz frame at a time.
package chip8

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/internal/ram"
	"github.com/thelolagemann/gochip8/internal/timer"
	"github.com/thelolagemann/gochip8/internal/video"
	"github.com/thelolagemann/gochip8/pkg/audio"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/log"
)

// FrameRate is the number of frames run per second. The timers
// decrement once per frame.
const FrameRate = timer.TickRate

// State is the lifecycle state of a Machine.
type State int

const (
	// Running executes instructions every frame.
	Running State = iota
	// Paused executes nothing, and the timers hold, until resumed.
	Paused
	// Halted is terminal. The machine never executes again.
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	}
	return "Unknown"
}

// Event is a lifecycle request from the platform.
type Event int

const (
	// EventQuit halts the machine.
	EventQuit Event = iota
	// EventTogglePause pauses a running machine, or resumes a
	// paused one.
	EventTogglePause
)

// Machine represents a CHIP-8 virtual machine. It contains all the
// components of the machine, and is the main entry point for the
// emulator.
type Machine struct {
	CPU    *cpu.CPU
	RAM    *ram.RAM
	Video  *video.Framebuffer
	Keypad *keypad.State
	Timer  *timer.Controller

	log.Logger

	sync.Mutex

	state   State
	speed   int
	rom     []byte
	frames  uint64
	palette display.Palette
	beeper  audio.Beeper

	frameHooks      []FrameHook
	loadedFromState bool
	fault           error
}

// FrameHook is called after every frame the machine runs, with the
// number of frames run so far.
type FrameHook func(m *Machine, frame uint64)

// New returns a new Machine, with no program loaded.
func New(opts ...Opt) *Machine {
	mem := ram.NewRAM()
	fb := video.NewFramebuffer()
	pad := keypad.New()
	timerCtl := timer.NewController()

	m := &Machine{
		CPU:     cpu.NewCPU(mem, fb, pad, timerCtl),
		RAM:     mem,
		Video:   fb,
		Keypad:  pad,
		Timer:   timerCtl,
		Logger:  log.NewNullLogger(),
		speed:   cpu.DefaultSpeed,
		palette: display.DefaultPalette,
		beeper:  audio.NewNullBeeper(),
	}

	for _, opt := range opts {
		opt(m)
	}
	m.CPU.SetLogger(m.Logger)

	return m
}

// LoadROM resets the machine and loads the program. If the program
// is rejected, the machine is halted before it ever runs.
func (m *Machine) LoadROM(rom []byte) error {
	m.reset()
	if err := m.RAM.LoadROM(rom); err != nil {
		m.state = Halted
		m.Errorf("failed to load ROM: %v", err)
		return err
	}

	m.rom = append(m.rom[:0], rom...)
	m.Infof("loaded %d byte ROM", len(rom))
	return nil
}

// Reset resets the machine and reloads the current program. A halted
// machine stays halted.
func (m *Machine) Reset() {
	if m.state == Halted {
		return
	}
	m.reset()
	if len(m.rom) > 0 {
		// already validated by LoadROM
		_ = m.RAM.LoadROM(m.rom)
	}
}

func (m *Machine) reset() {
	m.RAM.Reset()
	m.Video.Clear()
	m.Keypad.Reset()
	m.Timer.Reset()
	m.CPU.Reset()
	m.frames = 0
	m.beeper.SetActive(false)
}

// LoadedFromState returns true if the machine was restored by
// WithState, and already holds a program.
func (m *Machine) LoadedFromState() bool {
	return m.loadedFromState
}

// Fault returns the fault that halted the machine, if any.
func (m *Machine) Fault() error {
	return m.fault
}

// State returns the lifecycle state of the machine.
func (m *Machine) State() State {
	return m.state
}

// HandleEvent applies a lifecycle event. Halted is terminal, so a
// halted machine ignores every event.
func (m *Machine) HandleEvent(e Event) {
	if m.state == Halted {
		return
	}

	switch e {
	case EventQuit:
		m.halt()
	case EventTogglePause:
		if m.state == Running {
			m.state = Paused
		} else {
			m.state = Running
		}
		m.beeper.SetActive(m.state == Running && m.Timer.AudioActive())
	}
}

func (m *Machine) halt() {
	m.state = Halted
	m.beeper.SetActive(false)
}

// InstructionsPerFrame returns the number of instructions executed
// per frame, at least one.
func (m *Machine) InstructionsPerFrame() int {
	if n := m.speed / FrameRate; n > 0 {
		return n
	}
	return 1
}

// Frame runs one 60 Hz frame: up to InstructionsPerFrame
// instructions, ending early after the first sprite draw, followed
// by a single timer tick. Nothing runs unless the machine is
// Running. A CPU fault halts the machine, and is returned.
func (m *Machine) Frame() error {
	if m.state != Running {
		return nil
	}

	for i := 0; i < m.InstructionsPerFrame(); i++ {
		if err := m.CPU.Step(); err != nil {
			m.halt()
			m.fault = err
			m.Errorf("halting: %v", err)
			return err
		}
		if m.CPU.LastInstruction().Family == cpu.FamilyDraw {
			break
		}
	}

	m.Tick()
	m.frames++
	for _, hook := range m.frameHooks {
		hook(m, m.frames)
	}

	return nil
}

// Tick decrements the timers once, and updates the beeper.
func (m *Machine) Tick() {
	m.Timer.Tick()
	m.beeper.SetActive(m.Timer.AudioActive())
}

// Frames returns the number of frames run since the last reset.
func (m *Machine) Frames() uint64 {
	return m.frames
}

// AudioActive returns true while the sound timer is running.
func (m *Machine) AudioActive() bool {
	return m.Timer.AudioActive()
}

// Framebuffer returns a snapshot of the framebuffer.
func (m *Machine) Framebuffer() video.Frame {
	return m.Video.Frame()
}

// Dirty returns true if the framebuffer may have changed since the
// last call to ClearRefresh.
func (m *Machine) Dirty() bool {
	return m.Video.HasFrame()
}

// ClearRefresh is called once the framebuffer has been rendered.
func (m *Machine) ClearRefresh() {
	m.Video.ClearRefresh()
}

// Press presses a key on the keypad.
func (m *Machine) Press(k keypad.Key) {
	m.Keypad.Press(k)
}

// Release releases a key on the keypad.
func (m *Machine) Release(k keypad.Key) {
	m.Keypad.Release(k)
}

// Palette returns the palette frames are coloured with.
func (m *Machine) Palette() display.Palette {
	return m.palette
}

// SetSpeed sets the number of instructions executed per second.
func (m *Machine) SetSpeed(ips int) error {
	if ips <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, ips)
	}
	m.speed = ips
	return nil
}

// ErrInvalidSpeed is returned when the speed is not positive.
var ErrInvalidSpeed = errors.New("instructions per second must be positive")
