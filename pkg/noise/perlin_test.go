package noise

import (
	"errors"
	"math"
	"testing"

	"terrain-bg/pkg/core"
)

func identityTable(t *testing.T) *PermutationTable {
	t.Helper()
	var values [256]int
	for i := range values {
		values[i] = i
	}
	table, err := PermutationFromValues(values)
	if err != nil {
		t.Fatalf("identity permutation rejected: %v", err)
	}
	return table
}

func TestPermutationTableDuplicatesFirstHalf(t *testing.T) {
	table := NewPermutationTable(core.NewRNG(42))
	for i := 0; i < 256; i++ {
		if table[i+256] != table[i] {
			t.Fatalf("table[%d]=%d but table[%d]=%d", i+256, table[i+256], i, table[i])
		}
	}
	var seen [256]bool
	for _, v := range table[:256] {
		if seen[v] {
			t.Fatalf("value %d repeated in first half", v)
		}
		seen[v] = true
	}
}

func TestPermutationFromValuesRejectsInvalid(t *testing.T) {
	var dup [256]int
	for i := range dup {
		dup[i] = i
	}
	dup[10] = 11
	if _, err := PermutationFromValues(dup); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for duplicate entry, got %v", err)
	}

	var outOfRange [256]int
	for i := range outOfRange {
		outOfRange[i] = i
	}
	outOfRange[0] = 256
	if _, err := PermutationFromValues(outOfRange); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for out-of-range entry, got %v", err)
	}
}

func TestFadeEndpoints(t *testing.T) {
	cases := map[float64]float64{0: 0, 0.5: 0.5, 1: 1}
	for in, want := range cases {
		if got := fade(in); got != want {
			t.Fatalf("fade(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestGradDirections(t *testing.T) {
	cases := []struct {
		hash int
		want float64
	}{
		{0, 3},  // (1,1)·(1,2)
		{1, 1},  // (-1,1)·(1,2)
		{2, -3}, // (-1,-1)·(1,2)
		{3, -1}, // (1,-1)·(1,2)
		{7, -1}, // only the low two bits matter
	}
	for _, tc := range cases {
		if got := grad(tc.hash, 1, 2); got != tc.want {
			t.Fatalf("grad(%d) = %v, want %v", tc.hash, got, tc.want)
		}
	}
}

func TestPerlinKnownValues(t *testing.T) {
	p := NewPerlin(identityTable(t))

	cases := []struct {
		x, y float64
		want float64
	}{
		{0.5, 0.5, 0.5},
		{0.25, 0, 0.3017578125},
	}
	for _, tc := range cases {
		if got := p.Noise2D(tc.x, tc.y); got != tc.want {
			t.Fatalf("Noise2D(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPerlinZeroOnLattice(t *testing.T) {
	p := NewPerlin(NewPermutationTable(core.NewRNG(3)))
	for y := -3; y <= 300; y += 7 {
		for x := -3; x <= 300; x += 11 {
			if got := p.Noise2D(float64(x), float64(y)); got != 0 {
				t.Fatalf("Noise2D(%d,%d) = %v, want 0 on lattice points", x, y, got)
			}
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	p := NewPerlin(NewPermutationTable(core.NewRNG(99)))
	a := p.Noise2D(3.7, 8.2)
	b := p.Noise2D(3.7, 8.2)
	if a != b {
		t.Fatalf("noise not deterministic: %v != %v", a, b)
	}
}

func TestPerlinWrapsEveryCell(t *testing.T) {
	p := NewPerlin(NewPermutationTable(core.NewRNG(5)))
	if a, b := p.Noise2D(10.3, 4.6), p.Noise2D(10.3+256, 4.6); math.Abs(a-b) > 1e-9 {
		t.Fatalf("lattice should repeat every 256 cells: %v vs %v", a, b)
	}
}

func TestPerlinStaysSmall(t *testing.T) {
	p := NewPerlin(NewPermutationTable(core.NewRNG(11)))
	for y := 0.0; y < 20; y += 0.13 {
		for x := 0.0; x < 20; x += 0.17 {
			v := p.Noise2D(x, y)
			if math.IsNaN(v) || math.Abs(v) > 1.0001 {
				t.Fatalf("Noise2D(%v,%v) = %v outside [-1,1]", x, y, v)
			}
		}
	}
}

func TestRandomGradientSamplerSeeded(t *testing.T) {
	a := NewSampler(GradientsRandom, core.NewRNG(8))
	b := NewSampler(GradientsRandom, core.NewRNG(8))
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.31, float64(i)*0.17
		va, vb := a.Noise2D(x, y), b.Noise2D(x, y)
		if va != vb {
			t.Fatalf("seeded random gradients diverged at %d: %v vs %v", i, va, vb)
		}
		if math.IsNaN(va) {
			t.Fatalf("random gradients produced NaN at (%v,%v)", x, y)
		}
	}
}

func TestParseGradientSource(t *testing.T) {
	if src, err := ParseGradientSource("Random"); err != nil || src != GradientsRandom {
		t.Fatalf("expected random source, got %v (%v)", src, err)
	}
	if src, err := ParseGradientSource(""); err != nil || src != GradientsFixed {
		t.Fatalf("empty value should default to fixed, got %v (%v)", src, err)
	}
	if _, err := ParseGradientSource("simplex"); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
