package emulator

// Status represents the lifecycle state of the emulator.
// It can be one of the following:
//
//   - Running
//   - Paused
//   - Halted
type Status int

const (
	// Running represents the status of the emulator when it
	// is executing instructions.
	Running Status = iota
	// Paused represents the status of the emulator when it has
	// been paused by the user. Nothing executes, the timers
	// included, until it is resumed.
	Paused
	// Halted represents the status of the emulator once it has
	// been closed, or has failed. A halted emulator never runs
	// again.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsPaused() bool {
	return s == Paused
}

func (s Status) IsHalted() bool {
	return s == Halted
}
