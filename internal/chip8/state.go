package chip8

import (
	"fmt"

	"github.com/thelolagemann/gochip8/internal/ram"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/pkg/emulator"
)

var _ types.Stater = (*Machine)(nil)

// Save saves the machine, including the current program so that a
// restored machine can be reset.
func (m *Machine) Save(s *types.State) {
	s.Write16(uint16(len(m.rom)))
	s.WriteData(m.rom)
	m.RAM.Save(s)
	m.CPU.Save(s)
	m.Timer.Save(s)
	m.Video.Save(s)
}

// Load loads the machine. Read errors are recorded on s, see
// LoadState.
func (m *Machine) Load(s *types.State) {
	size := int(s.Read16())
	if size > ram.MaxProgramSize {
		s.Fail(fmt.Errorf("%w: program size %d", types.ErrStateInvalid, size))
		return
	}
	m.rom = make([]byte, size)
	s.ReadData(m.rom)
	m.RAM.Load(s)
	m.CPU.Load(s)
	m.Timer.Load(s)
	m.Video.Load(s)
}

// SaveState returns a save state of the machine.
func (m *Machine) SaveState() []byte {
	s := types.NewState()
	m.Save(s)
	return s.Bytes()
}

// LoadState restores the machine from s. If s cannot be read in
// full, the machine is left as it was.
func (m *Machine) LoadState(s *types.State) error {
	if m.state == Halted {
		return fmt.Errorf("load state: %w", emulator.ErrHalted)
	}

	previous := m.SaveState()
	m.Load(s)
	if err := s.Err(); err != nil {
		restore, _ := types.StateFromBytes(previous)
		m.Load(restore)
		return fmt.Errorf("load state: %w", err)
	}

	m.Keypad.Reset()
	m.beeper.SetActive(m.state == Running && m.Timer.AudioActive())
	m.Infof("loaded state (PC 0x%03X)", m.CPU.PC)
	return nil
}
