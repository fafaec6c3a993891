// Package audio provides the beeper that sounds while the sound timer
// of a machine is running.
package audio

// Beeper is a tone that is either sounding or silent.
type Beeper interface {
	// SetActive starts or stops the tone. It is called once per frame,
	// and must not block.
	SetActive(active bool)
	// Close releases the audio device.
	Close() error
}

type nullBeeper struct{}

func (nullBeeper) SetActive(bool) {}

func (nullBeeper) Close() error { return nil }

// NewNullBeeper returns a Beeper that makes no sound.
func NewNullBeeper() Beeper {
	return nullBeeper{}
}
