package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestClamp(t *testing.T) {
	if Clamp(1, 0, 10) != 1 || Clamp(1, 11, 10) != 10 || Clamp(1, 5, 10) != 5 {
		t.Errorf("expected values to be clamped to [1, 10]")
	}
	if Clamp(0.0, 1.5, 1.0) != 1.0 {
		t.Errorf("expected float to be clamped to 1.0")
	}
}

func TestFormatASCII(t *testing.T) {
	for b, expected := range map[byte]string{0x00: ".", 0x1F: ".", 'A': "A", '~': "~", 0x7F: ".", 0xF0: "."} {
		if got := FormatASCII(b); got != expected {
			t.Errorf("0x%02X: expected %q, got %q", b, expected, got)
		}
	}
}

func TestUint16Bytes(t *testing.T) {
	upper, lower := Uint16ToBytes(0x0258)
	if upper != 0x02 || lower != 0x58 {
		t.Errorf("expected 0x02 0x58, got 0x%02X 0x%02X", upper, lower)
	}
	if BytesToUint16(upper, lower) != 600 {
		t.Errorf("expected 600, got %d", BytesToUint16(upper, lower))
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame")
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))

	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path + ".png")
	if err != nil {
		t.Fatalf("expected .png extension to be added: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}
