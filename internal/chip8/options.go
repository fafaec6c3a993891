package chip8

import (
	"math/rand"

	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/pkg/audio"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/log"
)

// Opt is a function that modifies a Machine
// instance.
type Opt func(m *Machine)

// WithLogger sets the logger the machine and its CPU report to.
func WithLogger(log log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = log
	}
}

// Speed sets the number of instructions executed per second.
// Values below one are ignored.
func Speed(ips int) Opt {
	return func(m *Machine) {
		if ips > 0 {
			m.speed = ips
		}
	}
}

// WithSeed seeds the random number generator, so that runs are
// reproducible.
func WithSeed(seed int64) Opt {
	return func(m *Machine) {
		m.CPU.SetRandom(rand.New(rand.NewSource(seed)))
	}
}

// WithRand replaces the random number generator.
func WithRand(r cpu.Random) Opt {
	return func(m *Machine) {
		m.CPU.SetRandom(r)
	}
}

// WithQuirks selects the interpreter quirks the CPU follows.
func WithQuirks(q cpu.Quirks) Opt {
	return func(m *Machine) {
		m.CPU.Quirks = q
	}
}

// WithPalette sets the colours frames are sent to the display with.
func WithPalette(p display.Palette) Opt {
	return func(m *Machine) {
		m.palette = p
	}
}

// WithBeeper sets the beeper that sounds while the sound timer runs.
func WithBeeper(b audio.Beeper) Opt {
	return func(m *Machine) {
		m.beeper = b
	}
}

// WithFrameHook registers a function to be called after every frame.
func WithFrameHook(hook FrameHook) Opt {
	return func(m *Machine) {
		m.frameHooks = append(m.frameHooks, hook)
	}
}

// WithState restores the machine from a save state. The program
// held in the state becomes the current ROM.
func WithState(b []byte) Opt {
	return func(m *Machine) {
		state, err := types.StateFromBytes(b)
		if err != nil {
			m.Errorf("failed to read state: %v", err)
			return
		}
		if err := m.LoadState(state); err != nil {
			m.Errorf("failed to load state: %v", err)
			return
		}
		m.loadedFromState = true
	}
}
