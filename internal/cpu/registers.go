package cpu

import "fmt"

// NumRegisters is the number of general purpose registers, V0-VF.
const NumRegisters = 16

// Flag is the index of VF, which is written by the carry, borrow,
// shift and collision producing instructions.
const Flag = 0xF

// Registers holds the register file of the CPU.
type Registers struct {
	// V holds the 8-bit general purpose registers. VF doubles as the
	// flag register.
	V [NumRegisters]uint8
	// I is the index register, used for memory addressing.
	I uint16
	// PC is the program counter, it points to the next instruction
	// to be fetched.
	PC uint16
}

// setFlag writes VF. Called after the result has been written, so
// that an instruction targeting VF is left holding the flag.
func (r *Registers) setFlag(set bool) {
	if set {
		r.V[Flag] = 1
	} else {
		r.V[Flag] = 0
	}
}

// registerName returns the assembler name of register x.
func registerName(x uint8) string {
	return fmt.Sprintf("V%X", x&0xF)
}
