package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/thelolagemann/gochip8/internal/video"
	"golang.org/x/image/draw"
)

const (
	// ScreenWidth is the width of a frame in pixels.
	ScreenWidth = video.ScreenWidth
	// ScreenHeight is the height of a frame in pixels.
	ScreenHeight = video.ScreenHeight
	// FrameSize is the size of an RGB frame in bytes.
	FrameSize = ScreenWidth * ScreenHeight * 3
)

// ErrInvalidColour is returned when a colour cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// Palette maps the two pixel states to colours.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// DefaultPalette draws white pixels on a black background.
var DefaultPalette = Palette{
	On:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Off: color.RGBA{A: 0xFF},
}

// ParseColour parses a hex colour in the form RRGGBB or RRGGBBAA,
// optionally prefixed with # or 0x.
func ParseColour(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParsePalette parses the on and off colours of a Palette.
func ParsePalette(on, off string) (Palette, error) {
	var p Palette
	var err error
	if p.On, err = ParseColour(on); err != nil {
		return p, err
	}
	if p.Off, err = ParseColour(off); err != nil {
		return p, err
	}
	return p, nil
}

// RGB returns the frame as packed RGB, the format delivered to a
// Driver.
func (p Palette) RGB(frame video.Frame) []byte {
	b := make([]byte, FrameSize)
	for i, on := range frame {
		c := p.Off
		if on {
			c = p.On
		}
		b[i*3], b[i*3+1], b[i*3+2] = c.R, c.G, c.B
	}
	return b
}

// RGBImage converts a packed RGB frame to an image.
func RGBImage(rgb []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	CopyRGB(img, rgb)
	return img
}

// CopyRGB copies a packed RGB frame into img, which must be
// ScreenWidth x ScreenHeight.
func CopyRGB(img *image.RGBA, rgb []byte) {
	for i := 0; i < ScreenWidth*ScreenHeight && i*3+2 < len(rgb); i++ {
		img.Pix[i*4] = rgb[i*3]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
}

// ScaleImage scales img by an integer factor, keeping the pixels
// sharp.
func ScaleImage(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FrameImage renders a frame with the palette, scaled by an integer
// factor.
func FrameImage(frame video.Frame, p Palette, scale int) *image.RGBA {
	return ScaleImage(RGBImage(p.RGB(frame)), scale)
}
