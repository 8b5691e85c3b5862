package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"terrain-bg/internal/core"
	"terrain-bg/internal/layout"
	"terrain-bg/internal/terrain"
	"terrain-bg/pkg/noise"
)

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q: want key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KeyValues) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters shared by the tools. The
// terrain fields only supply help text and defaults; a generation request is
// built from the flags that were set explicitly.
type Config struct {
	Width, Height int
	Scale         float64
	Octaves       int
	Persistence   float64
	Lacunarity    float64
	Preset        string
	Shape         string
	Band          float64
	A, B          float64
	Threshold     string
	Split         float64
	Seed          int64
	Gradients     string
	Workers       int
	Palette       string
	Compression   string

	Viewport   string
	Variant    string
	ConfigFile string
	Section    string
	Overrides  KeyValues

	// Preview only.
	Zoom       int
	TPS        int
	HUDWidth   int
	Regenerate time.Duration
}

// DefaultSection is the ini section read when -section is not given.
const DefaultSection = "terrain"

// NewConfig returns a Config populated with the default request's values.
func NewConfig() *Config {
	req := terrain.DefaultRequest()
	return &Config{
		Width:       req.Width,
		Height:      req.Height,
		Scale:       req.Octaves.Scale,
		Octaves:     req.Octaves.Count,
		Persistence: req.Octaves.Persistence,
		Lacunarity:  req.Octaves.Lacunarity,
		Preset:      "gentle",
		Shape:       req.Falloff.Shape.String(),
		A:           req.Falloff.A,
		B:           req.Falloff.B,
		Threshold:   "off",
		Gradients:   noise.GradientsFixed.String(),
		Compression: "default",
		Section:     DefaultSection,
		Zoom:        2,
		TPS:         30,
		HUDWidth:    240,
	}
}

// Bind attaches the generation flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "texture width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "texture height in pixels")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "noise scale (pixels per lattice cell)")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of noise octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "amplitude multiplier per octave")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "frequency multiplier per octave")
	fs.StringVar(&c.Preset, "preset", c.Preset, "falloff preset: steep or gentle")
	fs.StringVar(&c.Shape, "shape", c.Shape, "falloff shape: radial or vertical")
	fs.Float64Var(&c.Band, "band", c.Band, "offset subtracted by the vertical falloff")
	fs.Float64Var(&c.A, "a", c.A, "falloff exponent A")
	fs.Float64Var(&c.B, "b", c.B, "falloff steepness B")
	fs.StringVar(&c.Threshold, "threshold", c.Threshold, "mirror threshold in [0,1] or off")
	fs.Float64Var(&c.Split, "split", c.Split, "front band ratio for the split layout (0 disables)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reproducible output (random when unset)")
	fs.StringVar(&c.Gradients, "gradients", c.Gradients, "gradient source: fixed or random")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per field (0 runs sequentially)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "comma-separated hex colors overriding the biome palette")
	fs.StringVar(&c.Compression, "compression", c.Compression, "png compression: default, none, speed or best")

	fs.StringVar(&c.Viewport, "viewport", c.Viewport, "viewport WIDTHxHEIGHT; picks the layout variant")
	fs.StringVar(&c.Variant, "variant", c.Variant, "layout variant: mobile, tablet or desktop")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "ini file with generation settings")
	fs.StringVar(&c.Section, "section", c.Section, "ini section to read")
	fs.Var(&c.Overrides, "set", "generation override in key=value form (repeatable)")
}

// BindPreview attaches the preview window flags.
func (c *Config) BindPreview(fs *flag.FlagSet) {
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.DurationVar(&c.Regenerate, "regen", c.Regenerate, "re-roll the seed at this interval (0 disables)")
}

// ViewportSize parses -viewport. ok is false when the flag is empty.
func (c *Config) ViewportSize() (size core.Size, ok bool, err error) {
	if strings.TrimSpace(c.Viewport) == "" {
		return core.Size{}, false, nil
	}
	size, err = layout.ParseViewport(c.Viewport)
	if err != nil {
		return core.Size{}, false, err
	}
	return size, true, nil
}

// Request builds the generation request. Settings are layered in order:
// the layout variant (from -variant or -viewport), the ini file section, the
// flags set explicitly on fs, and finally -set overrides.
func (c *Config) Request(fs *flag.FlagSet) (terrain.Request, error) {
	req := terrain.DefaultRequest()

	viewport, hasViewport, err := c.ViewportSize()
	if err != nil {
		return req, err
	}
	switch {
	case strings.TrimSpace(c.Variant) != "":
		v, err := layout.ParseVariant(c.Variant)
		if err != nil {
			return req, err
		}
		req = v.Request()
	case hasViewport:
		req = layout.ForViewport(viewport.W).Request()
	}

	if c.ConfigFile != "" {
		values, err := LoadINI(c.ConfigFile, c.Section)
		if err != nil {
			return req, err
		}
		if err := req.Apply(values); err != nil {
			return req, fmt.Errorf("%s [%s]: %w", c.ConfigFile, c.Section, err)
		}
	}

	if err := req.Apply(SetFlags(fs)); err != nil {
		return req, err
	}
	if err := req.Apply(c.Overrides.Map()); err != nil {
		return req, fmt.Errorf("-set: %w", err)
	}
	return req, req.Validate()
}

// SetFlags returns the flags given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]string {
	out := map[string]string{}
	if fs == nil {
		return out
	}
	fs.Visit(func(f *flag.Flag) {
		out[f.Name] = f.Value.String()
	})
	return out
}
