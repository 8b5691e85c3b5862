package core

import (
	"math"
	"testing"
)

func TestFloatGridIndexing(t *testing.T) {
	g := NewFloatGrid(4, 3)
	g.Set(3, 2, 1.5)
	if got := g.Cells()[g.Index(3, 2)]; got != 1.5 {
		t.Fatalf("expected 1.5 at (3,2), got %f", got)
	}
	if got := g.Row(2)[3]; got != 1.5 {
		t.Fatalf("row view mismatch: %f", got)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
}

func TestFloatGridClampsDimensions(t *testing.T) {
	g := NewFloatGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

func TestFloatGridMinMax(t *testing.T) {
	g := NewFloatGrid(2, 2)
	copy(g.Cells(), []float64{0.5, -2, 3, 1})
	lo, hi := g.MinMax()
	if lo != -2 || hi != 3 {
		t.Fatalf("expected [-2,3], got [%f,%f]", lo, hi)
	}
	if math.IsInf(lo, 0) {
		t.Fatal("non-empty grid must not report infinities")
	}
}
