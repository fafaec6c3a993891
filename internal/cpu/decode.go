package cpu

// Family is the top nibble of an opcode, which selects the
// instruction group.
type Family = uint8

const (
	FamilySystem     Family = 0x0 // 00E0, 00EE, 0NNN
	FamilyJump       Family = 0x1 // 1NNN
	FamilyCall       Family = 0x2 // 2NNN
	FamilySkipEqual  Family = 0x3 // 3XNN
	FamilySkipNotEq  Family = 0x4 // 4XNN
	FamilySkipRegEq  Family = 0x5 // 5XY0
	FamilyLoad       Family = 0x6 // 6XNN
	FamilyAdd        Family = 0x7 // 7XNN
	FamilyALU        Family = 0x8 // 8XYN
	FamilySkipRegNeq Family = 0x9 // 9XY0
	FamilyIndex      Family = 0xA // ANNN
	FamilyJumpV0     Family = 0xB // BNNN
	FamilyRandom     Family = 0xC // CXNN
	FamilyDraw       Family = 0xD // DXYN
	FamilyKey        Family = 0xE // EX9E, EXA1
	FamilyMisc       Family = 0xF // FXNN
)

// Instruction is a decoded opcode. No validation is performed while
// decoding, so every 16-bit value decodes to an Instruction.
type Instruction struct {
	Opcode uint16
	Family Family

	NNN uint16 // address, low 12 bits
	NN  uint8  // byte, low 8 bits
	N   uint8  // nibble, low 4 bits
	X   uint8  // register, bits 8-11
	Y   uint8  // register, bits 4-7
}

// Decode splits opcode into its fields.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Family: uint8(opcode >> 12),
		NNN:    opcode & 0x0FFF,
		NN:     uint8(opcode),
		N:      uint8(opcode & 0x000F),
		X:      uint8(opcode>>8) & 0xF,
		Y:      uint8(opcode>>4) & 0xF,
	}
}
