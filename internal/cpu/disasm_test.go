package cpu

import "testing"

func TestDecode(t *testing.T) {
	ins := Decode(0xD3A7)

	if ins.Family != FamilyDraw || ins.X != 0x3 || ins.Y != 0xA || ins.N != 0x7 {
		t.Errorf("unexpected decode %+v", ins)
	}
	if ins.NN != 0xA7 || ins.NNN != 0x3A7 {
		t.Errorf("expected NN=0xA7 NNN=0x3A7, got 0x%02X 0x%03X", ins.NN, ins.NNN)
	}
}

func TestDisassemble(t *testing.T) {
	for opcode, expected := range map[uint16]string{
		0x00E0: "CLS",
		0x00EE: "RET",
		0x0123: "SYS 0x123",
		0x1234: "JP 0x234",
		0x2FFF: "CALL 0xFFF",
		0x3A42: "SE VA, 0x42",
		0x5120: "SE V1, V2",
		0x5121: "DW 0x5121",
		0x7F01: "ADD VF, 0x01",
		0x8AB6: "SHR VA, VB",
		0x8AB8: "DW 0x8AB8",
		0xB200: "JP V0, 0x200",
		0xC0FF: "RND V0, 0xFF",
		0xD12F: "DRW V1, V2, 15",
		0xE39E: "SKP V3",
		0xE3A1: "SKNP V3",
		0xF40A: "LD V4, K",
		0xF555: "LD [I], V5",
		0xF565: "LD V5, [I]",
		0xF5FF: "DW 0xF5FF",
	} {
		if got := Disassemble(opcode); got != expected {
			t.Errorf("%04X: expected %q, got %q", opcode, expected, got)
		}
	}
}
