package chip8

import (
	"fmt"
	"time"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/emulator"
	"github.com/thelolagemann/gochip8/pkg/utils"
)

var _ display.Emulator = (*Machine)(nil)

// frameTimeSamples is the number of frame times sent with each
// event.FrameTime.
const frameTimeSamples = 100

// Start runs the machine at FrameRate until it halts. Frames are sent
// to the display as packed RGB whenever the framebuffer changes, and
// keys are read from pressed and released between frames. Sends never
// block the machine; a display that falls behind misses frames.
func (m *Machine) Start(frames chan<- []byte, events chan<- event.Event, pressed, released <-chan keypad.Key) {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	m.Lock()
	m.Infof("starting emulation at %d instructions per second", m.speed)
	m.Unlock()

	frameTimes := make([]time.Duration, frameTimeSamples)
	lastFrame := time.Now()
	fpsStart, fps := time.Now(), 0
	sound := false

	for {
		select {
		case k := <-pressed:
			m.Lock()
			m.Press(k)
			m.Unlock()
		case k := <-released:
			m.Lock()
			m.Release(k)
			m.Unlock()
		case now := <-ticker.C:
			m.Lock()
			_ = m.Frame() // logged, and the machine halted
			state := m.state
			var frame []byte
			if m.Dirty() {
				frame = m.palette.RGB(m.Framebuffer())
				m.ClearRefresh()
			}
			active := state == Running && m.AudioActive()
			m.Unlock()

			if frame != nil {
				select {
				case frames <- frame:
				default:
				}
			}
			if active != sound {
				sound = active
				trySend(events, event.Event{Type: event.Sound, Data: active})
			}

			copy(frameTimes, frameTimes[1:])
			frameTimes[frameTimeSamples-1] = now.Sub(lastFrame)
			lastFrame = now
			fps++

			if now.Sub(fpsStart) >= time.Second {
				trySend(events, event.Event{Type: event.Title, Data: fmt.Sprintf("gochip8 | %s | FPS: %d", state, fps)})
				times := make([]time.Duration, frameTimeSamples)
				copy(times, frameTimes)
				trySend(events, event.Event{Type: event.FrameTime, Data: times})
				fpsStart, fps = now, 0
			}

			if state == Halted {
				// the display must learn of the halt, so wait for it
				select {
				case events <- event.Event{Type: event.Quit}:
				case <-time.After(time.Second):
				}
				return
			}
		}
	}
}

func trySend(events chan<- event.Event, e event.Event) {
	select {
	case events <- e:
	default:
	}
}

// SendCommand sends a command packet to the machine. It is safe to
// call from any goroutine.
func (m *Machine) SendCommand(cmd emulator.CommandPacket) emulator.ResponsePacket {
	m.Lock()
	defer m.Unlock()

	resp := emulator.ResponsePacket{Command: cmd.Command}
	if m.state == Halted {
		resp.Error = emulator.ErrHalted
		return resp
	}

	switch cmd.Command {
	case emulator.CommandPause:
		if m.state == Running {
			m.HandleEvent(EventTogglePause)
		}
	case emulator.CommandResume:
		if m.state == Paused {
			m.HandleEvent(EventTogglePause)
		}
	case emulator.CommandTogglePause:
		m.HandleEvent(EventTogglePause)
	case emulator.CommandClose:
		m.HandleEvent(EventQuit)
	case emulator.CommandReset:
		m.Reset()
	case emulator.CommandLoadROM:
		resp.Error = m.LoadROM(cmd.Data)
	case emulator.CommandSaveState:
		resp.Data = m.SaveState()
	case emulator.CommandLoadState:
		s, err := types.StateFromBytes(cmd.Data)
		if err != nil {
			resp.Error = err
			break
		}
		resp.Error = m.LoadState(s)
	case emulator.CommandSetSpeed:
		if len(cmd.Data) < 2 {
			resp.Error = fmt.Errorf("%w: missing speed", ErrInvalidSpeed)
			break
		}
		resp.Error = m.SetSpeed(int(utils.BytesToUint16(cmd.Data[0], cmd.Data[1])))
	default:
		resp.Error = fmt.Errorf("%w: %d", emulator.ErrUnknownCommand, cmd.Command)
	}

	return resp
}

// Status returns the status of the machine. It is safe to call from
// any goroutine.
func (m *Machine) Status() emulator.Status {
	m.Lock()
	defer m.Unlock()

	switch m.state {
	case Paused:
		return emulator.Paused
	case Halted:
		return emulator.Halted
	}
	return emulator.Running
}

// Speed returns the number of instructions executed per second. It
// is safe to call from any goroutine.
func (m *Machine) Speed() float64 {
	m.Lock()
	defer m.Unlock()

	return float64(m.speed)
}
