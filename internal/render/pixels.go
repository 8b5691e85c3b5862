// Package render converts generated rasters and scalar fields into RGBA
// pixels for display.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"terrain-bg/pkg/noise"
)

// FillRGBA expands interleaved RGB pixels into opaque RGBA pixels in buf.
func FillRGBA(buf []byte, rgb []byte) {
	for i, j := 0, 0; i+2 < len(rgb) && j+3 < len(buf); i, j = i+3, j+4 {
		buf[j+0] = rgb[i+0]
		buf[j+1] = rgb[i+1]
		buf[j+2] = rgb[i+2]
		buf[j+3] = 0xff
	}
}

// FillMaskRGBA tints values in [0,1] for drawing over the texture. Zero
// intensity stays fully transparent.
func FillMaskRGBA(buf []byte, values []float64, tint color.RGBA) {
	const (
		maxAlpha      = 170.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, v := range values {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		intensity := noise.Clamp01(v)
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
}

// FillElevationRGBA shades a w×h height field with a blue-to-white ramp.
// Steeper cells are drawn more opaque.
func FillElevationRGBA(buf []byte, values []float64, w, h int) {
	total := w * h
	if total <= 0 || len(values) != total || len(buf) < 4*total {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			v := values[idx]
			col := elevationColor((v - lo) / span)

			maxDiff := 0.0
			if x > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(v-values[idx-1]))
			}
			if x+1 < w {
				maxDiff = math.Max(maxDiff, math.Abs(v-values[idx+1]))
			}
			if y > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(v-values[idx-w]))
			}
			if y+1 < h {
				maxDiff = math.Max(maxDiff, math.Abs(v-values[idx+w]))
			}
			slope := noise.Clamp01(maxDiff / span * 8)
			alpha := float64(col.A) * (0.55 + 0.45*slope)

			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = uint8(math.Round(math.Min(alpha, 255)))
		}
	}
}

// FitSize returns the largest size with the aspect ratio of w×h that fits
// inside maxW×maxH.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	f := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := int(math.Round(float64(w) * f))
	fh := int(math.Round(float64(h) * f))
	return max(1, min(fw, maxW)), max(1, min(fh, maxH))
}

// Fit rescales src to fit inside maxW×maxH. Nearest-neighbour sampling keeps
// every output pixel one of the source colors.
func Fit(src image.Image, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func elevationColor(t float64) color.RGBA {
	t = noise.Clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = noise.Clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
