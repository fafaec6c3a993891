//go:build !test

package audio

import (
	"github.com/ebitengine/oto/v3"
)

// OtoBeeper plays a SquareWave through oto.
type OtoBeeper struct {
	*SquareWave

	ctx    *oto.Context
	player *oto.Player
}

// NewOtoBeeper opens the default output device and starts playing the
// wave. The wave is silent until activated.
func NewOtoBeeper(wave *SquareWave) (*OtoBeeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   wave.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	b := &OtoBeeper{SquareWave: wave, ctx: ctx}
	b.player = ctx.NewPlayer(wave)
	b.player.Play()

	return b, nil
}

// Close stops playback.
func (b *OtoBeeper) Close() error {
	b.SquareWave.SetActive(false)
	return b.player.Close()
}
