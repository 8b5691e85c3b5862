package noise

import "math"

// Sampler evaluates a 2D noise function at a point.
type Sampler interface {
	Noise2D(x, y float64) float64
}

// Perlin is classic 2D gradient noise over a fixed permutation table. It is a
// pure function of its table: the same point always yields the same value.
type Perlin struct {
	perm *PermutationTable
}

// NewPerlin returns a noise evaluator reading from perm.
func NewPerlin(perm *PermutationTable) *Perlin {
	return &Perlin{perm: perm}
}

// Noise2D computes gradient noise at (x, y). The result is not clamped and
// typically falls within [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	perm := p.perm
	aa := perm[perm[xi]+yi]
	ab := perm[perm[xi]+yi+1]
	ba := perm[perm[xi+1]+yi]
	bb := perm[perm[xi+1]+yi+1]

	u := fade(xf)
	v := fade(yf)

	bottom := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	top := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, bottom, top)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad dots one of four diagonal gradients, picked by the low two bits of
// hash, with the offset (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return -x - y
	default:
		return x - y
	}
}
