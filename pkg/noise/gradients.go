package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"

	"terrain-bg/pkg/core"
)

// GradientSource selects how lattice gradients are chosen.
type GradientSource uint8

const (
	// GradientsFixed picks one of four diagonal gradients through a shuffled
	// permutation table.
	GradientsFixed GradientSource = iota
	// GradientsRandom uses a table of random unit gradients.
	GradientsRandom
)

func (g GradientSource) String() string {
	switch g {
	case GradientsRandom:
		return "random"
	default:
		return "fixed"
	}
}

// ParseGradientSource maps a flag value to a GradientSource.
func ParseGradientSource(s string) (GradientSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return GradientsFixed, nil
	case "random":
		return GradientsRandom, nil
	}
	return GradientsFixed, fmt.Errorf("gradient source %q: %w", s, ErrInvalidParameter)
}

// NewSampler builds a single-octave sampler for src, drawing all randomness
// from rng. Octaves are summed by Accumulate, so the random source is created
// with one iteration.
func NewSampler(src GradientSource, rng *core.RNG) Sampler {
	if src == GradientsRandom {
		return randomGradients{p: perlin.NewPerlin(2, 2, 1, rng.Source().Int64())}
	}
	return NewPerlin(NewPermutationTable(rng))
}

// randomGradients adapts go-perlin. Its table can, rarely, hold a zero-length
// gradient whose normalisation yields NaN; such samples read as flat.
type randomGradients struct {
	p *perlin.Perlin
}

func (r randomGradients) Noise2D(x, y float64) float64 {
	v := r.p.Noise2D(x, y)
	if math.IsNaN(v) {
		return 0
	}
	return v
}
