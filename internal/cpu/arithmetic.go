package cpu

import "github.com/thelolagemann/gochip8/pkg/bits"

// add adds Vy to Vx. VF is set to the carry.
//
//	ADD Vx, Vy
func (c *CPU) add(x, y uint8) {
	sum := uint16(c.V[x]) + uint16(c.V[y])
	c.V[x] = uint8(sum)
	c.setFlag(sum > 0xFF)
}

// sub subtracts Vy from Vx. VF is set to 1 when no borrow occurred.
//
//	SUB Vx, Vy
func (c *CPU) sub(x, y uint8) {
	vx, vy := c.V[x], c.V[y]
	c.V[x] = vx - vy
	c.setFlag(vx >= vy)
}

// subn sets Vx to Vy minus Vx. VF is set to 1 when no borrow occurred.
//
//	SUBN Vx, Vy
func (c *CPU) subn(x, y uint8) {
	vx, vy := c.V[x], c.V[y]
	c.V[x] = vy - vx
	c.setFlag(vy >= vx)
}

// shiftSource returns the register shifted by SHR and SHL.
func (c *CPU) shiftSource(x, y uint8) uint8 {
	if c.Quirks.ShiftInPlace {
		return c.V[x]
	}
	return c.V[y]
}

// shiftRight sets Vx to Vy shifted right by one. VF is set to the
// bit shifted out.
//
//	SHR Vx, Vy
func (c *CPU) shiftRight(x, y uint8) {
	v := c.shiftSource(x, y)
	c.V[x] = v >> 1
	c.setFlag(bits.Test(v, 0))
}

// shiftLeft sets Vx to Vy shifted left by one. VF is set to the bit
// shifted out.
//
//	SHL Vx, Vy
func (c *CPU) shiftLeft(x, y uint8) {
	v := c.shiftSource(x, y)
	c.V[x] = v << 1
	c.setFlag(bits.Test(v, 7))
}
