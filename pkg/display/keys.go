package display

import "github.com/thelolagemann/gochip8/internal/keypad"

// KeyLayout maps the left-hand block of a QWERTY keyboard onto the
// keypad, so that the physical layout matches.
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var KeyLayout = map[rune]keypad.Key{
	'1': keypad.Key1, '2': keypad.Key2, '3': keypad.Key3, '4': keypad.KeyC,
	'q': keypad.Key4, 'w': keypad.Key5, 'e': keypad.Key6, 'r': keypad.KeyD,
	'a': keypad.Key7, 's': keypad.Key8, 'd': keypad.Key9, 'f': keypad.KeyE,
	'z': keypad.KeyA, 'x': keypad.Key0, 'c': keypad.KeyB, 'v': keypad.KeyF,
}

// LookupKey returns the keypad key for a keyboard character,
// ignoring case.
func LookupKey(r rune) (keypad.Key, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok := KeyLayout[r]
	return k, ok
}
