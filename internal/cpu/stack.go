package cpu

import "errors"

// StackSize is the number of return addresses the call stack can hold.
const StackSize = 12

var (
	// ErrStackOverflow is returned when a subroutine is called with
	// a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a subroutine returns with an
	// empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// Stack is the fixed-capacity call stack of return addresses.
type Stack struct {
	entries [StackSize]uint16
	sp      uint8
}

// push pushes a return address. A full stack is left untouched.
func (s *Stack) push(address uint16) error {
	if int(s.sp) >= StackSize {
		return ErrStackOverflow
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// pop pops the most recent return address. An empty stack is left
// untouched.
func (s *Stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return int(s.sp)
}

// Peek returns the return address at depth i, 0 being the oldest.
func (s *Stack) Peek(i int) uint16 {
	return s.entries[i]
}
