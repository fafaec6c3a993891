package web

import "testing"

func TestCache(t *testing.T) {
	c := newCache(2)

	if c.index(0) != -1 {
		t.Errorf("expected empty entries to be ignored")
	}
	if idx := c.add(1, []byte{1}); idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
	if idx := c.add(2, []byte{2}); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	if c.index(2) != 1 {
		t.Errorf("expected hash 2 at index 1, got %d", c.index(2))
	}

	// evicts the oldest
	c.add(3, []byte{3})
	if c.index(1) != -1 {
		t.Errorf("expected hash 1 to be evicted")
	}
	if c.index(3) != 0 {
		t.Errorf("expected hash 3 at index 0, got %d", c.index(3))
	}
}
