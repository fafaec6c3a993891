package video

import (
	"testing"

	"github.com/thelolagemann/gochip8/internal/types"
)

func TestFramebuffer_Toggle(t *testing.T) {
	f := NewFramebuffer()

	if f.Toggle(3, 4) {
		t.Errorf("expected no collision when turning a pixel on")
	}
	if !f.Pixel(3, 4) {
		t.Errorf("expected pixel to be on")
	}
	if !f.Toggle(3, 4) {
		t.Errorf("expected collision when turning a pixel off")
	}
	if f.Pixel(3, 4) {
		t.Errorf("expected pixel to be off")
	}
}

func TestFramebuffer_Clear(t *testing.T) {
	f := NewFramebuffer()
	f.Toggle(0, 0)
	f.Toggle(ScreenWidth-1, ScreenHeight-1)
	f.ClearRefresh()

	f.Clear()

	if !f.HasFrame() {
		t.Errorf("expected clear to flag a redraw")
	}
	for i, on := range f.Frame() {
		if on {
			t.Fatalf("expected pixel %d to be off", i)
		}
	}

	f.ClearRefresh()
	if f.HasFrame() {
		t.Errorf("expected ClearRefresh to reset the redraw flag")
	}
}

func TestFramebuffer_State(t *testing.T) {
	f := NewFramebuffer()
	f.Toggle(0, 0)
	f.Toggle(9, 1)
	f.Toggle(63, 31)

	s := types.NewState()
	f.Save(s)

	loaded, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	f2 := NewFramebuffer()
	f2.Load(loaded)

	if f2.Frame() != f.Frame() {
		t.Errorf("expected restored frame to match")
	}
	if !f2.HasFrame() {
		t.Errorf("expected restored frame to be flagged for redraw")
	}
}
