package emulator

import (
	"os"
	"path/filepath"
	"strings"
)

// StateExtension is the file extension of save state files.
const StateExtension = ".c8s"

// Save represents a save state file stored next to a ROM.
type Save struct {
	b    []byte // the save state data
	Path string // the path to the save state file
}

// SavePath returns the path of the save state file for the ROM at
// romPath, e.g. "games/pong.ch8" -> "games/pong.c8s".
func SavePath(romPath string) string {
	return strings.TrimSuffix(romPath, filepath.Ext(romPath)) + StateExtension
}

// NewSave returns the save state for the ROM at romPath, loading it
// if one has already been written.
func NewSave(romPath string) (*Save, error) {
	path := SavePath(romPath)
	if _, err := os.Stat(path); err == nil {
		return LoadSave(path)
	}

	return &Save{Path: path}, nil
}

// LoadSave loads the save state file at path.
func LoadSave(path string) (*Save, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Save{b: b, Path: path}, nil
}

// Bytes returns the save state data, or nil if nothing has been
// saved yet.
func (s *Save) Bytes() []byte {
	return s.b
}

// SetBytes sets the save state data.
func (s *Save) SetBytes(b []byte) {
	s.b = b
}

// Close writes the save state to disk. The data is written to a
// temporary file first, and renamed over the original once
// complete, so a crash can never leave a partially written state.
func (s *Save) Close() error {
	if s.b == nil {
		return nil
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, s.b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
