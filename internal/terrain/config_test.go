package terrain

import (
	"errors"
	"image/png"
	"strings"
	"testing"

	"terrain-bg/pkg/noise"
)

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got.Width != 640 || got.Height != 360 || got.Falloff != GentleFalloff() {
		t.Fatalf("nil map should yield the default request, got %+v", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	req := FromMap(map[string]string{
		"w":           "270",
		"h":           "600",
		"scale":       "25",
		"octaves":     "6",
		"persistence": "0.4",
		"lacunarity":  "2.5",
		"preset":      "steep",
		"shape":       "vertical",
		"band":        "0.1",
		"threshold":   "0.25",
		"split":       "0.3",
		"seed":        "-12",
		"gradients":   "random",
		"workers":     "3",
		"palette":     "#102030",
		"compression": "best",
	})
	if req.Width != 270 || req.Height != 600 {
		t.Fatalf("size %dx%d", req.Width, req.Height)
	}
	want := noise.Octaves{Scale: 25, Count: 6, Persistence: 0.4, Lacunarity: 2.5}
	if req.Octaves != want {
		t.Fatalf("octaves = %+v, want %+v", req.Octaves, want)
	}
	f := req.Falloff
	if f.A != 5 || f.B != 8 || f.Shape != ShapeVertical || f.Band != 0.1 || !f.Mirrored || f.Threshold != 0.25 {
		t.Fatalf("falloff = %+v", f)
	}
	if req.Split.FrontRatio != 0.3 {
		t.Fatalf("split = %v", req.Split.FrontRatio)
	}
	if req.Seed == nil || *req.Seed != -12 {
		t.Fatalf("seed = %v", req.Seed)
	}
	if req.Gradients != noise.GradientsRandom || req.Workers != 3 || req.Compression != png.BestCompression {
		t.Fatalf("gradients/workers/compression = %v/%d/%v", req.Gradients, req.Workers, req.Compression)
	}
	if c := req.Palette[BiomeDeepWater]; c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Fatalf("palette override = %v", c)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	req := FromMap(map[string]string{
		"w":         "wide",
		"scale":     "-4",
		"octaves":   "-1",
		"preset":    "cliff",
		"a":         "0",
		"threshold": "2",
		"split":     "1",
		"seed":      "x",
		"palette":   "#nothex",
	})
	def := DefaultRequest()
	if req.Width != def.Width || req.Octaves != def.Octaves || req.Falloff != def.Falloff {
		t.Fatalf("bad values should keep defaults, got %+v", req)
	}
	if req.Split.FrontRatio != 0 || req.Seed != nil || req.Palette != def.Palette {
		t.Fatalf("bad values should keep defaults, got %+v", req)
	}
}

func TestFromMapThresholdOff(t *testing.T) {
	req := FromMap(map[string]string{"preset": "steep", "threshold": "off"})
	if req.Falloff.Mirrored {
		t.Fatal("threshold=off should disable mirroring")
	}
}

func TestApplyLayersOverExistingRequest(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height = 270, 600
	req.Falloff = SteepFalloff()
	if err := req.Apply(map[string]string{"octaves": "2", "unknown": "1"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if req.Width != 270 || req.Falloff != SteepFalloff() {
		t.Fatalf("Apply should keep fields it was not given, got %+v", req)
	}
	if req.Octaves.Count != 2 {
		t.Fatalf("octaves = %d, want 2", req.Octaves.Count)
	}
}

func TestApplyReportsEveryBadValue(t *testing.T) {
	req := DefaultRequest()
	err := req.Apply(map[string]string{
		"scale":     "0",
		"w":         "-5",
		"threshold": "NaN",
		"octaves":   "4",
	})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	for _, key := range []string{"scale=", "w=", "threshold="} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not name %s", err, key)
		}
	}
	def := DefaultRequest()
	if req.Width != def.Width || req.Octaves.Scale != def.Octaves.Scale || req.Falloff.Mirrored {
		t.Fatalf("rejected values should keep the current settings, got %+v", req)
	}
	if req.Octaves.Count != 4 {
		t.Fatalf("valid keys should still apply, octaves = %d", req.Octaves.Count)
	}
}
