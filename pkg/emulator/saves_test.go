package emulator

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestSavePath(t *testing.T) {
	for in, expected := range map[string]string{
		"pong.ch8":         "pong.c8s",
		"roms/tetris.c8":   "roms/tetris.c8s",
		"roms/maze":        "roms/maze.c8s",
		"roms/games.7z.gz": "roms/games.7z.c8s",
	} {
		if got := SavePath(in); got != expected {
			t.Errorf("%s: expected %s, got %s", in, expected, got)
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	rom := filepath.Join(t.TempDir(), "pong.ch8")

	s, err := NewSave(rom)
	if err != nil {
		t.Fatal(err)
	}
	if s.Bytes() != nil {
		t.Errorf("expected a new save to be empty")
	}
	if err := s.Close(); err != nil {
		t.Errorf("expected closing an empty save to succeed, got %v", err)
	}

	s.SetBytes([]byte{1, 2, 3})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewSave(rom)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(loaded.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("expected saved bytes to be restored, got %v", loaded.Bytes())
	}
}
