//go:build ebiten

package ebiten

import (
	"testing"

	"github.com/thelolagemann/gochip8/internal/keypad"
)

func TestRGBA(t *testing.T) {
	dst := make([]byte, 8)
	rgba(dst, []byte{1, 2, 3, 4, 5, 6})

	expected := []byte{1, 2, 3, 0xFF, 4, 5, 6, 0xFF}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, dst)
			break
		}
	}
}

func TestKeyLayout(t *testing.T) {
	seen := make(map[keypad.Key]bool)
	for _, k := range keys {
		seen[k] = true
	}
	if len(seen) != keypad.NumKeys {
		t.Errorf("expected every keypad key to be mapped, got %d", len(seen))
	}
}
