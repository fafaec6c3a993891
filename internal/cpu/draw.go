package cpu

import (
	"github.com/thelolagemann/gochip8/internal/video"
	"github.com/thelolagemann/gochip8/pkg/bits"
)

// draw XORs an n-row sprite read from I onto the framebuffer at
// (Vx, Vy). The start position wraps around the screen, the rest of
// the sprite is clipped at the edges. VF is set when a lit pixel is
// turned off.
//
//	DRW Vx, Vy, n
func (c *CPU) draw(x, y, n uint8) {
	startX := int(c.V[x]) % video.ScreenWidth
	startY := int(c.V[y]) % video.ScreenHeight

	collision := false
	for row := 0; row < int(n); row++ {
		py := startY + row
		if py >= video.ScreenHeight {
			break
		}

		line := c.ram.Read(c.I + uint16(row))
		for bit := 0; bit < 8; bit++ {
			px := startX + bit
			if px >= video.ScreenWidth {
				break
			}
			if bits.Pixel(line, uint8(bit)) && c.video.Toggle(px, py) {
				collision = true
			}
		}
	}

	c.setFlag(collision)
	c.video.MarkRefresh()
}
