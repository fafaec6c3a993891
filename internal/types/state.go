package types

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// stateMagic prefixes every serialized state so that arbitrary files
// are rejected before any component tries to read from them.
var stateMagic = []byte("C8ST")

// StateVersion is bumped whenever the layout written by a Stater changes.
const StateVersion uint8 = 2

var (
	// ErrStateTruncated is returned when a read runs past the end of the state.
	ErrStateTruncated = errors.New("state: unexpected end of data")
	// ErrStateInvalid is returned when the state header is not recognised.
	ErrStateInvalid = errors.New("state: invalid header")
)

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents a snapshot of the machine. Components append their
// fields in a fixed order with the Write methods, and read them back
// in the same order with the Read methods.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error encountered
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state with the header already written.
func NewState() *State {
	s := &State{
		raw: make([]byte, 0, 4352),
	}
	s.raw = append(s.raw, stateMagic...)
	s.raw = append(s.raw, StateVersion)
	return s
}

// StateFromBytes creates a new state from the given bytes, validating
// the header.
func StateFromBytes(raw []byte) (*State, error) {
	if len(raw) < len(stateMagic)+1 || !bytes.Equal(raw[:len(stateMagic)], stateMagic) {
		return nil, ErrStateInvalid
	}
	if v := raw[len(stateMagic)]; v != StateVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrStateInvalid, v)
	}

	return &State{
		raw:          raw,
		readPosition: len(stateMagic) + 1,
	}, nil
}

// LoadStateFromFile reads a state previously written with SaveToFile.
func LoadStateFromFile(filename string) (*State, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromBytes(b)
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// need reports whether n more bytes can be read, recording
// ErrStateTruncated otherwise.
func (s *State) need(n int) bool {
	if s.err != nil {
		return false
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrStateTruncated
		return false
	}
	return true
}

func (s *State) Read8() uint8 {
	if !s.need(1) {
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	if !s.need(2) {
		return 0
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if !s.need(len(p)) {
		return
	}
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Fail records err as the state's error unless one was already
// recorded. Further reads return zero values.
func (s *State) Fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first error encountered while reading the state.
func (s *State) Err() error {
	return s.err
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
