package core

import "testing"

func TestByteGridSetAt(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 9)
	g.Set(4, 0, 1)
	g.Set(-1, 0, 1)

	if got := g.At(3, 2); got != 9 {
		t.Fatalf("At(3,2) = %d, want 9", got)
	}
	if got := g.At(4, 0); got != 0 {
		t.Fatalf("out-of-range read returned %d", got)
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += int(v)
	}
	if sum != 9 {
		t.Fatalf("out-of-range writes leaked into the buffer, sum=%d", sum)
	}
}

func TestByteGridNegativeDims(t *testing.T) {
	g := NewByteGrid(-1, 5)
	if g.W != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.W, g.H)
	}
}
