package cpu

// jump sets PC to the given address, masked to 12 bits. An odd
// address is rounded down, so PC stays on an instruction boundary.
//
//	JP nnn
//	JP V0, nnn
func (c *CPU) jump(address uint16) {
	c.PC = address & pcMask
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address. With a full stack nothing happens.
//
//	CALL nnn
func (c *CPU) call(address uint16) error {
	if err := c.push(c.PC); err != nil {
		return err
	}
	c.jump(address)
	return nil
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() error {
	address, err := c.pop()
	if err != nil {
		return err
	}
	c.PC = address & pcMask
	return nil
}

// skipIf skips the next instruction if the condition holds.
//
//	SE Vx, nn
//	SNE Vx, nn
//	SE Vx, Vy
//	SNE Vx, Vy
//	SKP Vx
//	SKNP Vx
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.skip()
	}
}
