// Package video provides the monochrome framebuffer of the machine.
// Pixels are only ever toggled (XOR) by sprite draws or cleared as a
// whole; mapping pixels to colours is left to the display driver.
package video

import "github.com/thelolagemann/gochip8/internal/types"

const (
	// ScreenWidth is the width of the framebuffer in pixels.
	ScreenWidth = 64
	// ScreenHeight is the height of the framebuffer in pixels.
	ScreenHeight = 32
	// ScreenSize is the number of pixels in the framebuffer.
	ScreenSize = ScreenWidth * ScreenHeight
)

// Frame is a snapshot of the framebuffer, row-major (y*ScreenWidth+x).
type Frame [ScreenSize]bool

// Framebuffer holds the current frame, and whether it has changed
// since the renderer last consumed it.
type Framebuffer struct {
	pixels  Frame
	refresh bool
}

// NewFramebuffer returns a new cleared framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns every pixel off and flags the frame for redraw.
func (f *Framebuffer) Clear() {
	f.pixels = Frame{}
	f.refresh = true
}

// Toggle flips the pixel at x, y, returning true if the pixel was on
// and is now off (a collision). Coordinates must be in range.
func (f *Framebuffer) Toggle(x, y int) bool {
	i := y*ScreenWidth + x
	collision := f.pixels[i]
	f.pixels[i] = !f.pixels[i]
	return collision
}

// Pixel returns whether the pixel at x, y is on.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[y*ScreenWidth+x]
}

// Frame returns a copy of the current frame.
func (f *Framebuffer) Frame() Frame {
	return f.pixels
}

// MarkRefresh flags the frame for redraw.
func (f *Framebuffer) MarkRefresh() {
	f.refresh = true
}

// HasFrame returns true if the frame may have changed since the last
// call to ClearRefresh.
func (f *Framebuffer) HasFrame() bool {
	return f.refresh
}

// ClearRefresh is called by the renderer once it has consumed the frame.
func (f *Framebuffer) ClearRefresh() {
	f.refresh = false
}

var _ types.Stater = (*Framebuffer)(nil)

// Load loads the framebuffer, packed 8 pixels per byte, and flags it
// for redraw.
func (f *Framebuffer) Load(s *types.State) {
	packed := make([]byte, ScreenSize/8)
	s.ReadData(packed)
	for i := range f.pixels {
		f.pixels[i] = packed[i/8]&(types.Bit7>>(i%8)) != 0
	}
	f.refresh = true
}

// Save saves the framebuffer, packed 8 pixels per byte.
func (f *Framebuffer) Save(s *types.State) {
	s.WriteData(f.pixels.Pack())
}

// Pack returns the frame packed 8 pixels per byte, most significant
// bit first.
func (fr Frame) Pack() []byte {
	packed := make([]byte, ScreenSize/8)
	for i, on := range fr {
		if on {
			packed[i/8] |= types.Bit7 >> (i % 8)
		}
	}
	return packed
}
