package log

import (
	"bytes"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)

	l.Infof("loaded %d bytes", 132)
	l.Debugf("hidden")
	l.Errorf("fault at 0x%03X", 0x204)

	expected := "[INFO]\tloaded 132 bytes\n[ERROR]\tfault at 0x204\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	buf.Reset()
	NewWithWriter(&buf, true).Debugf("op %04X", 0x00E0)
	if buf.String() != "[DEBUG]\top 00E0\n" {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(NewWithWriter(&buf, false), 2)

	r.Infof("one")
	r.Errorf("two %d", 2)
	r.Debugf("three")

	lines := r.Lines()
	if len(lines) != 2 || lines[0] != "[ERROR] two 2" || lines[1] != "[DEBUG] three" {
		t.Errorf("expected the last two lines, got %q", lines)
	}
	if buf.String() != "[INFO]\tone\n[ERROR]\ttwo 2\n" {
		t.Errorf("expected lines to be passed on, got %q", buf.String())
	}
}
