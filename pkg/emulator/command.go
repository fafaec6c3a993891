package emulator

import "errors"

// CommandPacket is a command packet that is sent to the
// emulator to control it.
type CommandPacket struct {
	Command Command
	Data    []byte
}

// Command is a command that is sent to the emulator to
// control it.
type Command int

// ResponsePacket is a response packet that is sent
// from the emulator to the client.
type ResponsePacket struct {
	Command Command
	Data    []byte
	Error   error
}

const (
	// CommandPause pauses the emulator.
	CommandPause Command = iota
	// CommandResume resumes the emulator.
	CommandResume
	// CommandTogglePause pauses a running emulator, or resumes
	// a paused one.
	CommandTogglePause
	// CommandClose closes the emulator.
	CommandClose
	// CommandReset resets the emulator, reloading the current ROM.
	CommandReset
	// CommandLoadROM loads the ROM held in Data into the emulator.
	CommandLoadROM
	// CommandSaveState responds with a save state of the emulator.
	CommandSaveState
	// CommandLoadState loads the save state held in Data.
	CommandLoadState
	// CommandSetSpeed sets the instructions per second of the
	// emulator, held in Data as a big-endian uint16.
	CommandSetSpeed
)

var (
	// ErrHalted is returned for commands sent to a halted emulator.
	ErrHalted = errors.New("emulator is halted")
	// ErrUnknownCommand is returned for commands the emulator does
	// not understand.
	ErrUnknownCommand = errors.New("unknown command")
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandTogglePause:
		return "TogglePause"
	case CommandClose:
		return "Close"
	case CommandReset:
		return "Reset"
	case CommandLoadROM:
		return "LoadROM"
	case CommandSaveState:
		return "SaveState"
	case CommandLoadState:
		return "LoadState"
	case CommandSetSpeed:
		return "SetSpeed"
	default:
		return "Unknown"
	}
}
