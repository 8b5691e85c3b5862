// Package terrain turns fractal gradient noise into biome-colored background
// textures encoded as base64 PNG payloads.
package terrain

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"math"

	"terrain-bg/pkg/core"
	"terrain-bg/pkg/noise"
)

// ErrInvalidParameter reports a request the pipeline refuses to run.
var ErrInvalidParameter = noise.ErrInvalidParameter

// Split stacks two independent fields above and below a flat band reserved
// for foreground content. FrontRatio is the band's share of the height; 0
// disables splitting.
type Split struct {
	FrontRatio float64
}

// Request carries every input of a generation.
type Request struct {
	Width, Height int

	Octaves   noise.Octaves
	Falloff   Falloff
	Gradients noise.GradientSource
	Split     Split

	// Seed makes the output reproducible. Nil draws a fresh seed.
	Seed *int64

	Palette     Palette
	Compression png.CompressionLevel
	Workers     int

	Logger *log.Logger
}

// DefaultRequest is a 640x360 gentle island with the standard palette.
func DefaultRequest() Request {
	return Request{
		Width:   640,
		Height:  360,
		Octaves: noise.DefaultOctaves(),
		Falloff: GentleFalloff(),
		Palette: DefaultPalette(),
	}
}

// Validate checks the request once before any grid work starts.
func (r Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive: %w", r.Width, r.Height, ErrInvalidParameter)
	}
	if err := r.Octaves.Validate(); err != nil {
		return err
	}
	if err := r.Falloff.Validate(); err != nil {
		return err
	}
	if r.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative: %w", r.Workers, ErrInvalidParameter)
	}
	if r.Gradients != noise.GradientsFixed && r.Gradients != noise.GradientsRandom {
		return fmt.Errorf("gradient source %d: %w", r.Gradients, ErrInvalidParameter)
	}
	if fr := r.Split.FrontRatio; math.IsNaN(fr) || fr < 0 || fr >= 1 {
		return fmt.Errorf("front ratio %v must be within [0,1): %w", fr, ErrInvalidParameter)
	}
	if r.Split.FrontRatio > 0 {
		if _, _, err := splitRows(r.Height, r.Split.FrontRatio); err != nil {
			return err
		}
	}
	return nil
}

// FieldStats describes one accumulated noise field.
type FieldStats struct {
	Min, Max   float64
	Degenerate bool
}

// Stats summarises a generation.
type Stats struct {
	Seed     int64
	Fields   []FieldStats
	Coverage Coverage
}

// Payload is the finished background texture.
type Payload struct {
	Width, Height int
	Image         *Image
	Composite     *core.FloatGrid
	PNG           []byte
	Base64        string
	Stats         Stats
}

// DataURI returns the payload as a data:image/png URI.
func (p *Payload) DataURI() string {
	return "data:image/png;base64," + p.Base64
}

// Generate runs the whole pipeline: noise, falloff, normalisation,
// compositing, classification and encoding.
func Generate(req Request) (*Payload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Palette == (Palette{}) {
		req.Palette = DefaultPalette()
	}
	logger := req.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = core.EntropySeed()
	}

	var (
		composite *core.FloatGrid
		stats     = Stats{Seed: seed}
		err       error
	)
	if req.Split.FrontRatio > 0 {
		composite, stats.Fields, err = generateSplit(req, seed, logger)
	} else {
		var fs FieldStats
		composite, fs, err = generateField(req, req.Width, req.Height, seed, logger)
		stats.Fields = []FieldStats{fs}
	}
	if err != nil {
		return nil, err
	}

	img, cov := Rasterize(composite, req.Palette)
	stats.Coverage = cov
	if n := cov[BiomeOutOfRange]; n > 0 {
		logger.Printf("terrain: %d pixels classified out of range", n)
	}

	data, err := EncodePNG(img, req.Compression)
	if err != nil {
		return nil, err
	}
	logger.Printf("terrain: %dx%d seed=%d png=%dB", req.Width, req.Height, seed, len(data))

	return &Payload{
		Width:     req.Width,
		Height:    req.Height,
		Image:     img,
		Composite: composite,
		PNG:       data,
		Base64:    EncodeBase64(data),
		Stats:     stats,
	}, nil
}

// generateField builds one composited w×h field from its own permutation.
func generateField(req Request, w, h int, seed int64, logger *log.Logger) (*core.FloatGrid, FieldStats, error) {
	sampler := noise.NewSampler(req.Gradients, core.NewRNG(seed))
	field, err := noise.Accumulate(sampler, w, h, req.Octaves, req.Workers)
	if err != nil {
		return nil, FieldStats{}, err
	}
	fs := FieldStats{Min: field.Min, Max: field.Max, Degenerate: field.Degenerate()}
	if fs.Degenerate {
		logger.Printf("terrain: degenerate height range [%g,%g] for %dx%d field, normalising to 0", field.Min, field.Max, w, h)
	}

	mask := req.Falloff.Mask(w, h, req.Workers)
	composite, err := Composite(noise.Normalize(field), mask)
	if err != nil {
		return nil, FieldStats{}, err
	}
	return composite, fs, nil
}
