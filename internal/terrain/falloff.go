package terrain

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"terrain-bg/pkg/core"
	"terrain-bg/pkg/noise"
)

// Shape selects the direction heuristic feeding the falloff curve.
type Shape uint8

const (
	// ShapeRadial weighs pixels by their Chebyshev distance from the centre.
	ShapeRadial Shape = iota
	// ShapeVertical weighs pixels by their distance from the horizontal
	// centre line, offset by Falloff.Band.
	ShapeVertical
)

func (s Shape) String() string {
	if s == ShapeVertical {
		return "vertical"
	}
	return "radial"
}

// ParseShape maps a flag value to a Shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "radial":
		return ShapeRadial, nil
	case "vertical":
		return ShapeVertical, nil
	}
	return ShapeRadial, fmt.Errorf("falloff shape %q: %w", s, ErrInvalidParameter)
}

// Falloff darkens the edges of a field so the terrain reads as a bounded
// island. A and B control the steepness of the curve
//
//	f(v) = v^A / (v^A + (B - B*v)^A)
//
// When Mirrored is set, weights below Threshold are reflected so a flat band
// is carved out for foreground content.
type Falloff struct {
	A, B float64

	Shape Shape
	Band  float64 // subtracted by the vertical heuristic

	Mirrored  bool
	Threshold float64
}

// SteepFalloff is the sharp-edged curve with threshold mirroring.
func SteepFalloff() Falloff {
	return Falloff{A: 5, B: 8, Mirrored: true, Threshold: 0.3}
}

// GentleFalloff is the soft vignette without mirroring.
func GentleFalloff() Falloff {
	return Falloff{A: 3, B: 1.5}
}

// Preset returns a named falloff configuration.
func Preset(name string) (Falloff, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "steep":
		return SteepFalloff(), nil
	case "", "gentle":
		return GentleFalloff(), nil
	}
	return Falloff{}, fmt.Errorf("falloff preset %q: %w", name, ErrInvalidParameter)
}

// Validate checks the curve exponents and threshold.
func (f Falloff) Validate() error {
	if !(f.A > 0) || math.IsInf(f.A, 0) {
		return fmt.Errorf("falloff A %v must be positive and finite: %w", f.A, ErrInvalidParameter)
	}
	if !(f.B > 0) || math.IsInf(f.B, 0) {
		return fmt.Errorf("falloff B %v must be positive and finite: %w", f.B, ErrInvalidParameter)
	}
	if math.IsNaN(f.Band) || math.IsInf(f.Band, 0) {
		return fmt.Errorf("falloff band %v must be finite: %w", f.Band, ErrInvalidParameter)
	}
	if f.Mirrored && !(f.Threshold >= 0 && f.Threshold <= 1) {
		return fmt.Errorf("falloff threshold %v must be within [0,1]: %w", f.Threshold, ErrInvalidParameter)
	}
	if f.Shape != ShapeRadial && f.Shape != ShapeVertical {
		return fmt.Errorf("falloff shape %d: %w", f.Shape, ErrInvalidParameter)
	}
	return nil
}

// Evaluate applies the falloff curve. v is clamped to [0,1] first, so
// Evaluate(0) == 0 and Evaluate(1) == 1 exactly.
func (f Falloff) Evaluate(v float64) float64 {
	v = noise.Clamp01(v)
	va := math.Pow(v, f.A)
	return va / (va + math.Pow(f.B-f.B*v, f.A))
}

// MirrorPoint is the argument at which a below-threshold weight is evaluated.
func (f Falloff) MirrorPoint(v float64) float64 {
	return 1 - (v + (1 - f.Threshold))
}

// Weight returns the falloff for heuristic value v, mirroring below the
// threshold when enabled. The mirrored branch evaluates the curve at
// MirrorPoint(v) = T - v, which reaches 0 as v approaches T, so the weight
// jumps from near 1 just below T to Evaluate(T) at T.
func (f Falloff) Weight(v float64) float64 {
	if f.Mirrored && v < f.Threshold {
		return 1 - f.Evaluate(f.MirrorPoint(v))
	}
	return f.Evaluate(v)
}

// Heuristic maps normalised coordinates in [-1,1] to the curve input.
func (f Falloff) Heuristic(xn, yn float64) float64 {
	if f.Shape == ShapeVertical {
		return 1 - math.Abs(yn) - f.Band
	}
	return math.Max(math.Abs(xn), math.Abs(yn))
}

// At returns the weight of pixel (x, y) in a w×h image.
func (f Falloff) At(x, y, w, h int) float64 {
	xn := float64(x)/float64(w)*2 - 1
	yn := float64(y)/float64(h)*2 - 1
	return f.Weight(f.Heuristic(xn, yn))
}

// Mask builds the per-pixel weights for a w×h image. Rows are spread over
// workers goroutines when workers > 1.
func (f Falloff) Mask(w, h, workers int) *core.FloatGrid {
	grid := core.NewFloatGrid(w, h)
	fill := func(y int) {
		row := grid.Row(y)
		for x := range row {
			row[x] = f.At(x, y, w, h)
		}
	}
	if workers <= 1 {
		for y := 0; y < h; y++ {
			fill(y)
		}
		return grid
	}
	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				fill(y)
			}
		}()
	}
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	return grid
}
