//go:build !test

package audio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	// sdlSamples is the size of the device buffer, in samples.
	sdlSamples = 512
	// queueAhead is the number of frames of audio kept queued.
	queueAhead = 3
)

// SDLBeeper queues a SquareWave onto an SDL audio device.
type SDLBeeper struct {
	*SquareWave

	dev     sdl.AudioDeviceID
	done    chan struct{}
	stopped chan struct{}
}

// NewSDLBeeper opens the default SDL audio device and begins queueing
// the wave. The wave is silent until activated.
func NewSDLBeeper(wave *SquareWave) (*SDLBeeper, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	dev, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     int32(wave.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  sdlSamples,
	}, nil, 0)
	if err != nil {
		return nil, err
	}

	b := &SDLBeeper{SquareWave: wave, dev: dev, done: make(chan struct{}), stopped: make(chan struct{})}
	sdl.PauseAudioDevice(dev, false)
	go b.queue()

	return b, nil
}

func (b *SDLBeeper) queue() {
	defer close(b.stopped)

	frameBytes := (b.SampleRate / 60) * 2
	buf := make([]byte, frameBytes)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-b.done:
			return
		case <-ticker.C:
			for sdl.GetQueuedAudioSize(b.dev) < uint32(frameBytes*queueAhead) {
				n, _ := b.SquareWave.Read(buf)
				if err := sdl.QueueAudio(b.dev, buf[:n]); err != nil {
					break
				}
			}
		}
	}
}

// Close stops queueing and closes the audio device.
func (b *SDLBeeper) Close() error {
	b.SquareWave.SetActive(false)
	close(b.done)
	<-b.stopped
	sdl.CloseAudioDevice(b.dev)
	return nil
}
