package cpu

// execute runs a decoded instruction. PC has already been advanced
// past it. Unknown opcodes are executed as no-ops.
func (c *CPU) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Family {
	case FamilySystem:
		switch ins.Opcode {
		case 0x00E0: // CLS
			c.video.Clear()
		case 0x00EE: // RET
			return c.ret()
		default: // SYS nnn
			c.unknown(ins)
		}
	case FamilyJump: // JP nnn
		c.jump(ins.NNN)
	case FamilyCall: // CALL nnn
		return c.call(ins.NNN)
	case FamilySkipEqual: // SE Vx, nn
		c.skipIf(c.V[x] == ins.NN)
	case FamilySkipNotEq: // SNE Vx, nn
		c.skipIf(c.V[x] != ins.NN)
	case FamilySkipRegEq: // SE Vx, Vy
		if ins.N != 0 {
			c.unknown(ins)
			break
		}
		c.skipIf(c.V[x] == c.V[y])
	case FamilyLoad: // LD Vx, nn
		c.V[x] = ins.NN
	case FamilyAdd: // ADD Vx, nn
		c.V[x] += ins.NN
	case FamilyALU:
		switch ins.N {
		case 0x0: // LD Vx, Vy
			c.V[x] = c.V[y]
		case 0x1: // OR Vx, Vy
			c.V[x] |= c.V[y]
		case 0x2: // AND Vx, Vy
			c.V[x] &= c.V[y]
		case 0x3: // XOR Vx, Vy
			c.V[x] ^= c.V[y]
		case 0x4: // ADD Vx, Vy
			c.add(x, y)
		case 0x5: // SUB Vx, Vy
			c.sub(x, y)
		case 0x6: // SHR Vx, Vy
			c.shiftRight(x, y)
		case 0x7: // SUBN Vx, Vy
			c.subn(x, y)
		case 0xE: // SHL Vx, Vy
			c.shiftLeft(x, y)
		default:
			c.unknown(ins)
		}
	case FamilySkipRegNeq: // SNE Vx, Vy
		if ins.N != 0 {
			c.unknown(ins)
			break
		}
		c.skipIf(c.V[x] != c.V[y])
	case FamilyIndex: // LD I, nnn
		c.I = ins.NNN
	case FamilyJumpV0: // JP V0, nnn
		c.jump(uint16(c.V[0]) + ins.NNN)
	case FamilyRandom: // RND Vx, nn
		c.V[x] = uint8(c.rand.Intn(256)) & ins.NN
	case FamilyDraw: // DRW Vx, Vy, n
		c.draw(x, y, ins.N)
	case FamilyKey:
		switch ins.NN {
		case 0x9E: // SKP Vx
			c.skipIf(c.keys.IsPressed(c.V[x]))
		case 0xA1: // SKNP Vx
			c.skipIf(!c.keys.IsPressed(c.V[x]))
		default:
			c.unknown(ins)
		}
	case FamilyMisc:
		switch ins.NN {
		case 0x07: // LD Vx, DT
			c.V[x] = c.timers.Delay()
		case 0x0A: // LD Vx, K
			c.waitForKey(x)
		case 0x15: // LD DT, Vx
			c.timers.SetDelay(c.V[x])
		case 0x18: // LD ST, Vx
			c.timers.SetSound(c.V[x])
		case 0x1E: // ADD I, Vx
			c.I += uint16(c.V[x])
		case 0x29: // LD F, Vx
			c.loadGlyph(x)
		case 0x33: // LD B, Vx
			c.storeBCD(x)
		case 0x55: // LD [I], Vx
			c.storeRegisters(x)
		case 0x65: // LD Vx, [I]
			c.loadRegisters(x)
		default:
			c.unknown(ins)
		}
	}
	return nil
}

// unknown is executed for every opcode without a defined behaviour.
func (c *CPU) unknown(ins Instruction) {
	c.log.Debugf("cpu: ignoring unknown opcode %04X at 0x%03X", ins.Opcode, (c.PC-2)&addressMask)
}
