package terrain

import (
	"strings"
	"testing"

	"terrain-bg/internal/core"
)

var (
	_ core.ParameterControlsProvider = (*Request)(nil)
	_ core.IntParameterSetter        = (*Request)(nil)
	_ core.FloatParameterSetter      = (*Request)(nil)
	_ core.ParameterReader           = (*Request)(nil)
)

func TestParametersSnapshot(t *testing.T) {
	req := seeded(DefaultRequest(), 99)
	snap := req.Parameters()

	if p, ok := snap.Find("seed"); !ok || p.Value != "99" {
		t.Fatalf("seed parameter = %+v (%v)", p, ok)
	}
	if p, ok := snap.Find("threshold"); !ok || p.Value != "off" {
		t.Fatalf("threshold parameter = %+v (%v)", p, ok)
	}
	p, ok := snap.Find("palette")
	if !ok || strings.Count(p.Value, ",") != 7 {
		t.Fatalf("palette should list eight colors, got %q", p.Value)
	}
	if !strings.HasPrefix(p.Value, "#340e9c,") {
		t.Fatalf("palette should start with deep water, got %q", p.Value)
	}

	unseeded := DefaultRequest().Parameters()
	if p, _ := unseeded.Find("seed"); p.Value != "random" {
		t.Fatalf("unseeded request seed = %q", p.Value)
	}
}

func TestSetParametersClampToControls(t *testing.T) {
	req := DefaultRequest()
	if !req.SetIntParameter("octaves", 50) || req.Octaves.Count != 12 {
		t.Fatalf("octaves = %d, want clamp to 12", req.Octaves.Count)
	}
	if !req.SetFloatParameter("persistence", -1) || req.Octaves.Persistence != 0 {
		t.Fatalf("persistence = %v, want 0", req.Octaves.Persistence)
	}
	if !req.SetFloatParameter("threshold", 0.4) || !req.Falloff.Mirrored || req.Falloff.Threshold != 0.4 {
		t.Fatalf("threshold setter should enable mirroring, got %+v", req.Falloff)
	}
	if req.SetFloatParameter("octaves", 3) {
		t.Fatal("octaves is an integer control")
	}
	if req.SetIntParameter("unknown", 1) || req.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}
	if v, ok := req.FloatParameter("octaves"); !ok || v != 12 {
		t.Fatalf("FloatParameter(octaves) = %v (%v)", v, ok)
	}
}

func TestEveryControlIsReadable(t *testing.T) {
	req := DefaultRequest()
	for _, ctrl := range req.ParameterControls() {
		if _, ok := req.FloatParameter(ctrl.Key); !ok {
			t.Fatalf("control %q has no readable value", ctrl.Key)
		}
	}
	if v, ok := req.FloatParameter("threshold"); !ok || v != req.Falloff.Threshold {
		t.Fatalf("threshold should read back while mirroring is off, got %v (%v)", v, ok)
	}
}
