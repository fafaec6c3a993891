package cpu

import "github.com/thelolagemann/gochip8/internal/ram"

// loadGlyph points I at the font glyph for the low nibble of Vx.
//
//	LD F, Vx
func (c *CPU) loadGlyph(x uint8) {
	c.I = ram.GlyphAddress(c.V[x])
}

// storeBCD stores the hundreds, tens and ones digits of Vx at I, I+1
// and I+2.
//
//	LD B, Vx
func (c *CPU) storeBCD(x uint8) {
	v := c.V[x]
	c.ram.Write(c.I, v/100)
	c.ram.Write(c.I+1, (v/10)%10)
	c.ram.Write(c.I+2, v%10)
}

// storeRegisters stores V0 through Vx in memory starting at I. I is
// left pointing past the last byte written.
//
//	LD [I], Vx
func (c *CPU) storeRegisters(x uint8) {
	for i := uint16(0); i <= uint16(x); i++ {
		c.ram.Write(c.I+i, c.V[i])
	}
	c.I += uint16(x) + 1
}

// loadRegisters loads V0 through Vx from memory starting at I. I is
// left pointing past the last byte read.
//
//	LD Vx, [I]
func (c *CPU) loadRegisters(x uint8) {
	for i := uint16(0); i <= uint16(x); i++ {
		c.V[i] = c.ram.Read(c.I + i)
	}
	c.I += uint16(x) + 1
}

// waitForKey blocks execution until a key is pressed, and stores it
// in Vx. Blocking is done by rewinding PC so the instruction is
// fetched again on the next cycle. With the WaitForRelease quirk the
// captured key must also be released before Vx is written.
//
//	LD Vx, K
func (c *CPU) waitForKey(x uint8) {
	if !c.waiting {
		key, ok := c.keys.FirstPressed()
		if !ok {
			c.block()
			return
		}
		c.waiting = true
		c.waitKey = key
	}

	if c.Quirks.WaitForRelease && c.keys.IsPressed(c.waitKey) {
		c.block()
		return
	}

	c.V[x] = c.waitKey
	c.waiting = false
}

func (c *CPU) block() {
	c.rewind()
	c.blocked = true
}
