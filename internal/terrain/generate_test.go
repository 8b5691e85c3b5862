package terrain

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"terrain-bg/pkg/noise"
)

func seeded(req Request, seed int64) Request {
	req.Seed = &seed
	return req
}

func TestGenerateDecodesToPaletteImage(t *testing.T) {
	req := seeded(DefaultRequest(), 7)
	req.Octaves = noise.Octaves{Scale: 40, Count: 4, Persistence: 0.5, Lacunarity: 2}
	req.Falloff.Shape = ShapeRadial

	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payload.Width != 640 || payload.Height != 360 {
		t.Fatalf("payload size %dx%d", payload.Width, payload.Height)
	}

	data, err := base64.StdEncoding.DecodeString(payload.Base64)
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("decoded bounds %v", b)
	}
	p := DefaultPalette()
	for y := 0; y < 360; y++ {
		for x := 0; x < 640; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if !p.Contains(c) {
				t.Fatalf("pixel (%d,%d) = %v is not a palette color", x, y, c)
			}
		}
	}
	if payload.Stats.Coverage[BiomeOutOfRange] != 0 {
		t.Fatalf("out of range pixels: %d", payload.Stats.Coverage[BiomeOutOfRange])
	}
	if !strings.HasPrefix(payload.DataURI(), "data:image/png;base64,") {
		t.Fatalf("unexpected data URI prefix: %.40s", payload.DataURI())
	}
}

func TestGenerateCompositeWithinUnitRange(t *testing.T) {
	req := seeded(DefaultRequest(), 11)
	req.Width, req.Height = 120, 80
	req.Falloff = SteepFalloff()
	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, v := range payload.Composite.Cells() {
		if v < 0 || v > 1 {
			t.Fatalf("composite cell %d = %v", i, v)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	req := seeded(DefaultRequest(), 42)
	req.Width, req.Height = 96, 64

	a, err := Generate(req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	req.Workers = 4
	b, err := Generate(req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if a.Base64 != b.Base64 {
		t.Fatal("same seed produced different payloads")
	}
	if a.Stats.Seed != 42 {
		t.Fatalf("stats seed = %d, want 42", a.Stats.Seed)
	}

	c, err := Generate(seeded(req, 43))
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if c.Base64 == a.Base64 {
		t.Fatal("different seeds produced identical payloads")
	}
}

func TestGenerateRecordsDrawnSeed(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height = 32, 32
	first, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	replay, err := Generate(seeded(req, first.Stats.Seed))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replay.Base64 != first.Base64 {
		t.Fatal("replaying the recorded seed did not reproduce the image")
	}
}

func TestGenerateRejectsInvalidRequests(t *testing.T) {
	cases := map[string]func(*Request){
		"zero width":      func(r *Request) { r.Width = 0 },
		"negative height": func(r *Request) { r.Height = -3 },
		"zero scale":      func(r *Request) { r.Octaves.Scale = 0 },
		"negative octave": func(r *Request) { r.Octaves.Count = -1 },
		"zero falloff A":  func(r *Request) { r.Falloff.A = 0 },
		"front ratio 1":   func(r *Request) { r.Split.FrontRatio = 1 },
		"negative worker": func(r *Request) { r.Workers = -2 },
		"bad gradients":   func(r *Request) { r.Gradients = noise.GradientSource(9) },
	}
	for name, mutate := range cases {
		req := seeded(DefaultRequest(), 1)
		mutate(&req)
		if _, err := Generate(req); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", name, err)
		}
	}
}

func TestGenerateZeroOctavesIsDeepWater(t *testing.T) {
	req := seeded(DefaultRequest(), 5)
	req.Width, req.Height = 40, 30
	req.Octaves.Count = 0
	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payload.Stats.Fields) != 1 || !payload.Stats.Fields[0].Degenerate {
		t.Fatalf("expected one degenerate field, got %+v", payload.Stats.Fields)
	}
	if got := payload.Stats.Coverage[BiomeDeepWater]; got != 40*30 {
		t.Fatalf("deep water pixels = %d, want %d", got, 40*30)
	}
}

func TestGenerateSplitLeavesFrontBandFlat(t *testing.T) {
	req := seeded(DefaultRequest(), 9)
	req.Width, req.Height = 60, 100
	req.Falloff = SteepFalloff()
	req.Falloff.Shape = ShapeVertical
	req.Split = Split{FrontRatio: 0.3}

	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payload.Stats.Fields) != 2 {
		t.Fatalf("expected two fields, got %d", len(payload.Stats.Fields))
	}
	front, part, err := splitRows(100, 0.3)
	if err != nil {
		t.Fatalf("splitRows: %v", err)
	}
	if front != 30 || part != 35 {
		t.Fatalf("splitRows = %d,%d want 30,35", front, part)
	}
	deep := DefaultPalette().Color(BiomeDeepWater)
	for y := part; y < part+front; y++ {
		for x := 0; x < 60; x++ {
			if v := payload.Composite.At(x, y); v != 0 {
				t.Fatalf("band cell (%d,%d) = %v, want 0", x, y, v)
			}
			i := (y*60 + x) * 3
			if payload.Image.Pix[i] != deep.R || payload.Image.Pix[i+1] != deep.G || payload.Image.Pix[i+2] != deep.B {
				t.Fatalf("band pixel (%d,%d) is not deep water", x, y)
			}
		}
	}
}

func TestSplitOddHeightFillsEveryRow(t *testing.T) {
	front, part, err := splitRows(361, 0.3)
	if err != nil {
		t.Fatalf("splitRows: %v", err)
	}
	if front != 108 || part != 127 {
		t.Fatalf("splitRows = %d,%d want 108,127", front, part)
	}

	req := seeded(DefaultRequest(), 2)
	req.Width, req.Height = 20, 361
	req.Split = Split{FrontRatio: 0.3}
	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payload.Composite.H != 361 {
		t.Fatalf("composite height = %d", payload.Composite.H)
	}
}

func TestGenerateRandomGradients(t *testing.T) {
	req := seeded(DefaultRequest(), 3)
	req.Width, req.Height = 64, 48
	req.Gradients = noise.GradientsRandom
	payload, err := Generate(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payload.Stats.Coverage[BiomeOutOfRange] != 0 {
		t.Fatal("random gradients produced out of range pixels")
	}
}
