package cpu

import "fmt"

// Disassemble returns the assembler mnemonic for opcode. Opcodes
// without a defined behaviour are shown as raw data.
func Disassemble(opcode uint16) string {
	ins := Decode(opcode)
	vx, vy := registerName(ins.X), registerName(ins.Y)

	switch ins.Family {
	case FamilySystem:
		switch opcode {
		case 0x00E0:
			return "CLS"
		case 0x00EE:
			return "RET"
		}
		return fmt.Sprintf("SYS 0x%03X", ins.NNN)
	case FamilyJump:
		return fmt.Sprintf("JP 0x%03X", ins.NNN)
	case FamilyCall:
		return fmt.Sprintf("CALL 0x%03X", ins.NNN)
	case FamilySkipEqual:
		return fmt.Sprintf("SE %s, 0x%02X", vx, ins.NN)
	case FamilySkipNotEq:
		return fmt.Sprintf("SNE %s, 0x%02X", vx, ins.NN)
	case FamilySkipRegEq:
		if ins.N == 0 {
			return fmt.Sprintf("SE %s, %s", vx, vy)
		}
	case FamilyLoad:
		return fmt.Sprintf("LD %s, 0x%02X", vx, ins.NN)
	case FamilyAdd:
		return fmt.Sprintf("ADD %s, 0x%02X", vx, ins.NN)
	case FamilyALU:
		if name, ok := aluMnemonics[ins.N]; ok {
			return fmt.Sprintf("%s %s, %s", name, vx, vy)
		}
	case FamilySkipRegNeq:
		if ins.N == 0 {
			return fmt.Sprintf("SNE %s, %s", vx, vy)
		}
	case FamilyIndex:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case FamilyJumpV0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case FamilyRandom:
		return fmt.Sprintf("RND %s, 0x%02X", vx, ins.NN)
	case FamilyDraw:
		return fmt.Sprintf("DRW %s, %s, %d", vx, vy, ins.N)
	case FamilyKey:
		switch ins.NN {
		case 0x9E:
			return "SKP " + vx
		case 0xA1:
			return "SKNP " + vx
		}
	case FamilyMisc:
		if format, ok := miscMnemonics[ins.NN]; ok {
			return fmt.Sprintf(format, vx)
		}
	}

	return fmt.Sprintf("DW 0x%04X", opcode)
}

var aluMnemonics = map[uint8]string{
	0x0: "LD",
	0x1: "OR",
	0x2: "AND",
	0x3: "XOR",
	0x4: "ADD",
	0x5: "SUB",
	0x6: "SHR",
	0x7: "SUBN",
	0xE: "SHL",
}

var miscMnemonics = map[uint8]string{
	0x07: "LD %s, DT",
	0x0A: "LD %s, K",
	0x15: "LD DT, %s",
	0x18: "LD ST, %s",
	0x1E: "ADD I, %s",
	0x29: "LD F, %s",
	0x33: "LD B, %s",
	0x55: "LD [I], %s",
	0x65: "LD %s, [I]",
}
