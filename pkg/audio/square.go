package audio

import (
	"encoding/binary"
	"sync/atomic"
)

const (
	DefaultFrequency  = 440
	DefaultSampleRate = 44100
	DefaultVolume     = 3000
)

// SquareWave generates a mono square wave as signed 16-bit little
// endian samples. The wave alternates between +Volume and -Volume
// every half period, where the period is SampleRate / Frequency
// samples. While inactive, Read yields silence.
type SquareWave struct {
	Frequency  int
	SampleRate int
	Volume     int16

	index  uint32
	active atomic.Bool
}

// NewSquareWave returns a SquareWave. Non-positive values are replaced
// with the defaults.
func NewSquareWave(freq, sampleRate int, volume int16) *SquareWave {
	if freq <= 0 {
		freq = DefaultFrequency
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if volume <= 0 {
		volume = DefaultVolume
	}
	return &SquareWave{Frequency: freq, SampleRate: sampleRate, Volume: volume}
}

// SetActive implements Beeper.
func (w *SquareWave) SetActive(active bool) {
	w.active.Store(active)
}

// Active returns true if the wave is sounding.
func (w *SquareWave) Active() bool {
	return w.active.Load()
}

// Close implements Beeper.
func (w *SquareWave) Close() error {
	w.active.Store(false)
	return nil
}

func (w *SquareWave) halfPeriod() uint32 {
	half := uint32(w.SampleRate/w.Frequency) / 2
	if half == 0 {
		return 1
	}
	return half
}

// Next returns the next sample of the wave, ignoring whether the wave
// is active.
func (w *SquareWave) Next() int16 {
	sample := -w.Volume
	if (w.index/w.halfPeriod())%2 == 1 {
		sample = w.Volume
	}
	w.index++
	return sample
}

// Read fills p with whole samples, and never returns an error. It
// implements io.Reader so that the wave can be handed straight to an
// audio player.
func (w *SquareWave) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	active := w.active.Load()
	for i := 0; i < n; i += 2 {
		var sample int16
		if active {
			sample = w.Next()
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(sample))
	}
	return n, nil
}
