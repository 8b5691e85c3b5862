package noise

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"terrain-bg/pkg/core"
)

// Octaves configures fractal accumulation.
type Octaves struct {
	Scale       float64 // divides pixel coordinates before sampling
	Count       int     // number of octaves; 0 yields a flat field
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
}

// DefaultOctaves mirrors the values the background renderer has always used.
func DefaultOctaves() Octaves {
	return Octaves{Scale: 40, Count: 4, Persistence: 0.5, Lacunarity: 2}
}

// Validate rejects values that would turn the field non-finite.
func (o Octaves) Validate() error {
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return fmt.Errorf("scale %v must be positive and finite: %w", o.Scale, ErrInvalidParameter)
	}
	if o.Count < 0 {
		return fmt.Errorf("octave count %d must not be negative: %w", o.Count, ErrInvalidParameter)
	}
	if math.IsNaN(o.Persistence) || math.IsInf(o.Persistence, 0) {
		return fmt.Errorf("persistence %v must be finite: %w", o.Persistence, ErrInvalidParameter)
	}
	if math.IsNaN(o.Lacunarity) || math.IsInf(o.Lacunarity, 0) {
		return fmt.Errorf("lacunarity %v must be finite: %w", o.Lacunarity, ErrInvalidParameter)
	}
	return nil
}

// Height sums Count octaves of s at pixel (x, y).
func (o Octaves) Height(s Sampler, x, y int) float64 {
	amplitude, frequency, height := 1.0, 1.0, 0.0
	for i := 0; i < o.Count; i++ {
		sx := float64(x) / o.Scale * frequency
		sy := float64(y) / o.Scale * frequency
		height += s.Noise2D(sx, sy) * amplitude

		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	return height
}

// Field is a raw accumulated height grid along with its extremes.
type Field struct {
	Heights  *core.FloatGrid
	Min, Max float64
}

// Degenerate reports whether every height in the field is the same.
func (f Field) Degenerate() bool { return f.Min == f.Max }

// Accumulate evaluates o over a w×h grid. With workers > 1 rows are spread
// over that many goroutines; every cell is computed exactly as in the
// sequential path so the results are identical.
func Accumulate(s Sampler, w, h int, o Octaves, workers int) (Field, error) {
	if w <= 0 || h <= 0 {
		return Field{}, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidParameter)
	}
	if err := o.Validate(); err != nil {
		return Field{}, err
	}
	grid := core.NewFloatGrid(w, h)
	if workers <= 1 || h == 1 {
		lo, hi := math.Inf(1), math.Inf(-1)
		for y := 0; y < h; y++ {
			row := grid.Row(y)
			for x := range row {
				v := o.Height(s, x, y)
				lo, hi = math.Min(lo, v), math.Max(hi, v)
				row[x] = v
			}
		}
		return Field{Heights: grid, Min: lo, Max: hi}, nil
	}

	rowMin := make([]float64, h)
	rowMax := make([]float64, h)
	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			lo, hi := math.Inf(1), math.Inf(-1)
			row := grid.Row(y)
			for x := range row {
				v := o.Height(s, x, y)
				lo, hi = math.Min(lo, v), math.Max(hi, v)
				row[x] = v
			}
			rowMin[y], rowMax[y] = lo, hi
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Field{}, err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := range rowMin {
		lo, hi = math.Min(lo, rowMin[y]), math.Max(hi, rowMax[y])
	}
	return Field{Heights: grid, Min: lo, Max: hi}, nil
}

// Normalize rescales the field into [0,1] in place using its tracked
// extremes. A degenerate field becomes all zeros.
func Normalize(f Field) *core.FloatGrid {
	cells := f.Heights.Cells()
	for i, v := range cells {
		cells[i] = InverseLerp(v, f.Min, f.Max)
	}
	return f.Heights
}

// InverseLerp maps v from [lo, hi] onto [0,1], clamped. When lo == hi the
// range carries no information and the result is 0.
func InverseLerp(v, lo, hi float64) float64 {
	if lo != hi {
		return Clamp01((v - lo) / (hi - lo))
	}
	return 0
}

// Clamp01 limits v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
