package display

import (
	"testing"

	"github.com/thelolagemann/gochip8/internal/keypad"
)

func TestLookupKey(t *testing.T) {
	for r, expected := range map[rune]keypad.Key{
		'1': keypad.Key1,
		'4': keypad.KeyC,
		'Q': keypad.Key4,
		'f': keypad.KeyE,
		'X': keypad.Key0,
		'v': keypad.KeyF,
	} {
		k, ok := LookupKey(r)
		if !ok || k != expected {
			t.Errorf("%c: expected key %X, got %X (%t)", r, expected, k, ok)
		}
	}

	if _, ok := LookupKey('p'); ok {
		t.Errorf("expected p to be unmapped")
	}
	if len(KeyLayout) != keypad.NumKeys {
		t.Errorf("expected every key to be mapped, got %d", len(KeyLayout))
	}
}
