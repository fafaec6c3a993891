package web

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/gochip8/pkg/display"
)

// frameCacheSize is the number of frames held in the frame cache.
const frameCacheSize = 64

// encoder turns the RGB frames of the emulator into messages for the
// clients.
type encoder struct {
	cache   *cache
	current []byte // RGBA
}

func newEncoder() *encoder {
	return &encoder{
		cache:   newCache(frameCacheSize),
		current: make([]byte, display.ScreenWidth*display.ScreenHeight*4),
	}
}

// encode converts an RGB frame to RGBA, and returns the message to
// broadcast for it.
func (e *encoder) encode(f []byte, compress, caching bool) ([]byte, error) {
	for i := 0; i < display.ScreenWidth*display.ScreenHeight; i++ {
		e.current[i*4] = f[i*3]
		e.current[i*4+1] = f[i*3+1]
		e.current[i*4+2] = f[i*3+2]
		e.current[i*4+3] = 255
	}

	output := e.current
	if compress {
		var err error
		if output, err = cbrotli.Encode(e.current, cbrotli.WriterOptions{Quality: 7}); err != nil {
			return nil, err
		}
	} else {
		output = append([]byte(nil), e.current...)
	}

	idx := make([]byte, 2)
	if !caching {
		binary.LittleEndian.PutUint16(idx, noCache)
		return append(append([]byte{Frame}, idx...), output...), nil
	}

	hash := xxhash.Sum64(output)

	e.cache.Lock()
	defer e.cache.Unlock()
	if i := e.cache.index(hash); i != -1 {
		binary.LittleEndian.PutUint16(idx, uint16(i))
		return append([]byte{FrameCache}, idx...), nil
	}

	binary.LittleEndian.PutUint16(idx, uint16(e.cache.add(hash, output)))
	return append(append([]byte{Frame}, idx...), output...), nil
}

// sync returns the messages that bring a connecting client up to
// date: the current frame, and the contents of the cache.
func (e *encoder) sync() ([][]byte, error) {
	frame, err := cbrotli.Encode(e.current, cbrotli.WriterOptions{Quality: 9})
	if err != nil {
		return nil, err
	}

	e.cache.RLock()
	defer e.cache.RUnlock()

	data := []byte{FrameCacheSync}
	for i, c := range e.cache.cache {
		if len(c.data) == 0 {
			continue
		}

		var length, idx = make([]byte, 4), make([]byte, 2)
		binary.LittleEndian.PutUint32(length, uint32(len(c.data)))
		binary.LittleEndian.PutUint16(idx, uint16(i))

		data = append(data, append(append(length, idx...), c.data...)...)
	}

	return [][]byte{append([]byte{FrameSync}, frame...), data}, nil
}
