package audio

import (
	"encoding/binary"
	"testing"
)

func TestSquareWave_Defaults(t *testing.T) {
	w := NewSquareWave(0, 0, 0)
	if w.Frequency != 440 || w.SampleRate != 44100 || w.Volume != 3000 {
		t.Errorf("expected 440/44100/3000, got %d/%d/%d", w.Frequency, w.SampleRate, w.Volume)
	}
}

func TestSquareWave_Next(t *testing.T) {
	// period 4, half period 2
	w := NewSquareWave(100, 400, 10)

	expected := []int16{-10, -10, 10, 10, -10, -10, 10, 10}
	for i, e := range expected {
		if got := w.Next(); got != e {
			t.Errorf("sample %d: expected %d, got %d", i, e, got)
		}
	}
}

func TestSquareWave_Period(t *testing.T) {
	w := NewSquareWave(DefaultFrequency, DefaultSampleRate, DefaultVolume)

	// 44100 / 440 = 100 samples, so 50 per half
	for i := 0; i < 50; i++ {
		if s := w.Next(); s != -DefaultVolume {
			t.Fatalf("sample %d: expected %d, got %d", i, -DefaultVolume, s)
		}
	}
	if s := w.Next(); s != DefaultVolume {
		t.Errorf("sample 50: expected %d, got %d", DefaultVolume, s)
	}
}

func TestSquareWave_Read(t *testing.T) {
	w := NewSquareWave(100, 400, 10)

	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = 0xFF
	}
	n, err := w.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("expected 8 bytes, got %d", n)
	}
	for i := 0; i < n; i += 2 {
		if s := int16(binary.LittleEndian.Uint16(buf[i:])); s != 0 {
			t.Errorf("expected silence while inactive, got %d", s)
		}
	}

	w.SetActive(true)
	if _, err := w.Read(buf); err != nil {
		t.Fatal(err)
	}
	expected := []int16{-10, -10, 10, 10}
	for i, e := range expected {
		if s := int16(binary.LittleEndian.Uint16(buf[i*2:])); s != e {
			t.Errorf("sample %d: expected %d, got %d", i, e, s)
		}
	}

	if err := w.Close(); err != nil || w.Active() {
		t.Errorf("expected inactive wave after close, got active=%t err=%v", w.Active(), err)
	}
}

func TestNullBeeper(t *testing.T) {
	b := NewNullBeeper()
	b.SetActive(true)
	if err := b.Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
