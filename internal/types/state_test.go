package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestState_ReadWrite(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0xBEEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	loaded, err := StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	if v := loaded.Read8(); v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", v)
	}
	if v := loaded.Read16(); v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", v)
	}
	if !loaded.ReadBool() {
		t.Errorf("expected true, got false")
	}
	data := make([]byte, 3)
	loaded.ReadData(data)
	if data[0] != 1 || data[1] != 2 || data[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", data)
	}
	if loaded.Err() != nil {
		t.Errorf("expected no error, got %v", loaded.Err())
	}
}

func TestState_Truncated(t *testing.T) {
	s := NewState()
	s.Write8(1)

	loaded, err := StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	loaded.Read8()
	if v := loaded.Read16(); v != 0 {
		t.Errorf("expected 0 from truncated read, got %d", v)
	}
	if !errors.Is(loaded.Err(), ErrStateTruncated) {
		t.Errorf("expected ErrStateTruncated, got %v", loaded.Err())
	}
}

func TestState_InvalidHeader(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("C8"), []byte("NOPE\x01"), []byte("C8ST\x09")} {
		if _, err := StateFromBytes(raw); !errors.Is(err, ErrStateInvalid) {
			t.Errorf("expected ErrStateInvalid for %q, got %v", raw, err)
		}
	}
}

func TestState_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.c8s")
	s := NewState()
	s.Write16(0x200)
	if err := s.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadStateFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if v := loaded.Read16(); v != 0x200 {
		t.Errorf("expected 0x200, got 0x%04X", v)
	}
}

func TestState_Fail(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	loaded, err := StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	loaded.Fail(ErrStateInvalid)
	loaded.Fail(ErrStateTruncated)
	if v := loaded.Read8(); v != 0 {
		t.Errorf("expected reads after Fail to return 0, got 0x%02X", v)
	}
	if !errors.Is(loaded.Err(), ErrStateInvalid) {
		t.Errorf("expected the first error to be kept, got %v", loaded.Err())
	}
}
