// Package timer provides the two countdown registers of the machine.
// Both count down towards zero once per tick, nominally at 60 Hz,
// and the sound timer drives the buzzer while it is non-zero.
package timer

import "github.com/thelolagemann/gochip8/internal/types"

// TickRate is the nominal number of ticks per second.
const TickRate = 60

// Controller holds the delay and sound timers.
type Controller struct {
	delay uint8
	sound uint8

	audioActive bool
}

// NewController returns a new timer controller with both timers at zero.
func NewController() *Controller {
	return &Controller{}
}

// Tick decrements both timers towards zero and latches whether the
// buzzer should sound until the next tick.
func (c *Controller) Tick() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
	c.audioActive = c.sound > 0
}

// AudioActive reports whether the sound timer was non-zero after the
// most recent tick.
func (c *Controller) AudioActive() bool {
	return c.audioActive
}

// Delay returns the delay timer.
func (c *Controller) Delay() uint8 {
	return c.delay
}

// SetDelay sets the delay timer.
func (c *Controller) SetDelay(v uint8) {
	c.delay = v
}

// Sound returns the sound timer.
func (c *Controller) Sound() uint8 {
	return c.sound
}

// SetSound sets the sound timer. The buzzer starts sounding
// immediately for any non-zero value.
func (c *Controller) SetSound(v uint8) {
	c.sound = v
	c.audioActive = v > 0
}

// Reset zeroes both timers.
func (c *Controller) Reset() {
	c.delay, c.sound, c.audioActive = 0, 0, false
}

var _ types.Stater = (*Controller)(nil)

// Load loads the state of the controller.
func (c *Controller) Load(s *types.State) {
	c.delay = s.Read8()
	c.sound = s.Read8()
	c.audioActive = s.ReadBool()
}

// Save saves the state of the controller.
func (c *Controller) Save(s *types.State) {
	s.Write8(c.delay)
	s.Write8(c.sound)
	s.WriteBool(c.audioActive)
}
