package chip8

import (
	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/pkg/log"
)

// Snapshot is a copy of the machine, taken for debuggers.
type Snapshot struct {
	Registers cpu.Registers
	Stack     []uint16
	Last      cpu.Instruction
	RAM       []byte
	Delay     uint8
	Sound     uint8
	Frames    uint64
	State     State
}

// Snapshot copies the machine. It is safe to call from any goroutine.
func (m *Machine) Snapshot() Snapshot {
	m.Lock()
	defer m.Unlock()

	s := Snapshot{
		Registers: m.CPU.Registers,
		Stack:     make([]uint16, m.CPU.Depth()),
		Last:      m.CPU.LastInstruction(),
		RAM:       m.RAM.Bytes(),
		Delay:     m.Timer.Delay(),
		Sound:     m.Timer.Sound(),
		Frames:    m.frames,
		State:     m.state,
	}
	for i := range s.Stack {
		s.Stack[i] = m.CPU.Peek(i)
	}
	return s
}

// Logs returns the most recent lines logged by the machine, if it
// was created with a log.Recorder.
func (m *Machine) Logs() []string {
	if r, ok := m.Logger.(*log.Recorder); ok {
		return r.Lines()
	}
	return nil
}
