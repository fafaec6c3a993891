// Package keypad provides the 16-key hexadecimal keypad latch. Keys
// are written by the platform input driver between cycles, and read
// by the CPU.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package keypad

// Key represents a physical key on the keypad, 0x0-0xF.
type Key = uint8

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// State represents the state of the keypad.
type State struct {
	keys [NumKeys]bool
}

// New returns a new keypad with every key released.
func New() *State {
	return &State{}
}

// Press presses a key. Keys outside the keypad are ignored.
func (s *State) Press(key Key) {
	if key < NumKeys {
		s.keys[key] = true
	}
}

// Release releases a key. Keys outside the keypad are ignored.
func (s *State) Release(key Key) {
	if key < NumKeys {
		s.keys[key] = false
	}
}

// IsPressed returns true if the key is held. Only the low nibble
// of key is considered, as the CPU may ask about any register value.
func (s *State) IsPressed(key Key) bool {
	return s.keys[key&0xF]
}

// FirstPressed returns the lowest numbered key that is held.
func (s *State) FirstPressed() (Key, bool) {
	for k, down := range s.keys {
		if down {
			return Key(k), true
		}
	}
	return 0, false
}

// Reset releases every key.
func (s *State) Reset() {
	s.keys = [NumKeys]bool{}
}
