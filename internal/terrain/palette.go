package terrain

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Biome identifies one color bin of the terrain palette.
type Biome uint8

const (
	BiomeDeepWater Biome = iota
	BiomeShallowWater
	BiomeBeach
	BiomeGrassLow
	BiomeGrassHigh
	BiomeMountainLow
	BiomeMountainHigh
	BiomeSnow
	// BiomeOutOfRange marks values outside [0,1], including NaN. Composited
	// values are clamped, so it never shows up in a generated image.
	BiomeOutOfRange

	biomeCount
)

var biomeNames = [biomeCount]string{
	"deep water",
	"shallow water",
	"beach",
	"grass (low)",
	"grass (high)",
	"mountain (low)",
	"mountain (high)",
	"snow",
	"out of range",
}

func (b Biome) String() string {
	if b < biomeCount {
		return biomeNames[b]
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// Exclusive upper bounds of the first seven bins. Snow covers [0.9, 1].
var binUpper = [...]float64{0.18, 0.42, 0.50, 0.60, 0.72, 0.80, 0.90}

// Classify maps a composited value to its biome.
func Classify(v float64) Biome {
	if math.IsNaN(v) || v < 0 {
		return BiomeOutOfRange
	}
	for i, upper := range binUpper {
		if v < upper {
			return Biome(i)
		}
	}
	if v <= 1 {
		return BiomeSnow
	}
	return BiomeOutOfRange
}

// Palette holds one opaque color per biome, guard color included.
type Palette [biomeCount]color.RGBA

var defaultPalette = Palette{
	{R: 52, G: 14, B: 156, A: 255},
	{R: 82, G: 40, B: 199, A: 255},
	{R: 196, G: 172, B: 63, A: 255},
	{R: 49, G: 215, B: 4, A: 255},
	{R: 42, G: 133, B: 21, A: 255},
	{R: 69, G: 44, B: 44, A: 255},
	{R: 45, G: 31, B: 31, A: 255},
	{R: 154, G: 168, B: 153, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
}

// DefaultPalette returns the standard biome colors.
func DefaultPalette() Palette { return defaultPalette }

// Color returns the color for b. Unknown biomes use the guard color.
func (p Palette) Color(b Biome) color.RGBA {
	if b >= biomeCount {
		return p[BiomeOutOfRange]
	}
	return p[b]
}

// Contains reports whether c is one of the eight terrain colors.
func (p Palette) Contains(c color.RGBA) bool {
	for _, pc := range p[:BiomeOutOfRange] {
		if pc == c {
			return true
		}
	}
	return false
}

// Hex lists the palette colors as #rrggbb strings in biome order.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}

// ParsePalette overrides the leading terrain colors of the default palette
// with comma-separated hex values; the leading # is optional so the list can be
// written in ini files, where " #" starts a comment. Empty entries keep the
// default. The guard color cannot be overridden.
func ParsePalette(list string) (Palette, error) {
	p := DefaultPalette()
	if strings.TrimSpace(list) == "" {
		return p, nil
	}
	parts := strings.Split(list, ",")
	if len(parts) > int(BiomeOutOfRange) {
		return p, fmt.Errorf("palette has %d colors, at most %d allowed: %w", len(parts), BiomeOutOfRange, ErrInvalidParameter)
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "#") {
			part = "#" + part
		}
		c, err := colorful.Hex(part)
		if err != nil {
			return p, fmt.Errorf("palette color %d %q: %v: %w", i, part, err, ErrInvalidParameter)
		}
		r, g, b := c.RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}
