package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testROM = []byte{0x00, 0xE0, 0x12, 0x00}

func TestLoadFile_Raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clear.ch8")
	if err := os.WriteFile(path, testROM, 0644); err != nil {
		t.Fatal(err)
	}

	data, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, testROM) {
		t.Errorf("expected %v, got %v", testROM, data)
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(testROM)
	w.Close()

	path := filepath.Join(t.TempDir(), "clear.ch8.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, testROM) {
		t.Errorf("expected %v, got %v", testROM, data)
	}
}

func TestLoadFile_Zip(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	readme, _ := w.Create("README.txt")
	readme.Write([]byte("not a rom"))
	rom, _ := w.Create("games/clear.ch8")
	rom.Write(testROM)
	w.Close()

	path := filepath.Join(t.TempDir(), "games.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, testROM) {
		t.Errorf("expected the ROM to be chosen over the readme, got %q", data)
	}
}

func TestLoadFile_EmptyZip(t *testing.T) {
	var buf bytes.Buffer
	zip.NewWriter(&buf).Close()

	path := filepath.Join(t.TempDir(), "empty.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); !errors.Is(err, ErrEmptyArchive) {
		t.Errorf("expected ErrEmptyArchive, got %v", err)
	}
}

func TestROMName(t *testing.T) {
	for in, expected := range map[string]string{
		"pong.ch8":               "pong",
		"roms/tetris.c8.gz":      "tetris",
		"/tmp/space invaders.7z": "space invaders",
		"maze":                   "maze",
	} {
		if got := ROMName(in); got != expected {
			t.Errorf("%s: expected %q, got %q", in, expected, got)
		}
	}
}
