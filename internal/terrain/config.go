package terrain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"terrain-bg/pkg/noise"
)

// FromMap populates a request from a string map (flag-style key/value pairs)
// on top of DefaultRequest. Bad values are skipped; use Apply to see them.
func FromMap(cfg map[string]string) Request {
	r := DefaultRequest()
	_ = r.Apply(cfg)
	return r
}

// Apply overrides the fields named in cfg. Unknown keys are ignored. A value
// that does not parse or is out of range keeps the current setting and is
// reported in the returned error, which wraps ErrInvalidParameter. A preset is
// applied before the individual falloff keys so they can refine it.
func (r *Request) Apply(cfg map[string]string) error {
	if cfg == nil {
		return nil
	}
	var errs []error
	reject := func(key, v, want string) {
		errs = append(errs, fmt.Errorf("%s=%q: want %s: %w", key, v, want, ErrInvalidParameter))
	}

	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.Width = parsed
		} else {
			reject("w", v, "a positive integer")
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			r.Height = parsed
		} else {
			reject("h", v, "a positive integer")
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			r.Octaves.Scale = parsed
		} else {
			reject("scale", v, "a positive number")
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.Octaves.Count = parsed
		} else {
			reject("octaves", v, "a non-negative integer")
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			r.Octaves.Persistence = parsed
		} else {
			reject("persistence", v, "a number")
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			r.Octaves.Lacunarity = parsed
		} else {
			reject("lacunarity", v, "a number")
		}
	}
	if v, ok := cfg["preset"]; ok {
		if f, err := Preset(v); err == nil {
			r.Falloff = f
		} else {
			errs = append(errs, err)
		}
	}
	if v, ok := cfg["shape"]; ok {
		if s, err := ParseShape(v); err == nil {
			r.Falloff.Shape = s
		} else {
			errs = append(errs, err)
		}
	}
	if v, ok := cfg["band"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			r.Falloff.Band = parsed
		} else {
			reject("band", v, "a number")
		}
	}
	if v, ok := cfg["a"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			r.Falloff.A = parsed
		} else {
			reject("a", v, "a positive number")
		}
	}
	if v, ok := cfg["b"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			r.Falloff.B = parsed
		} else {
			reject("b", v, "a positive number")
		}
	}
	if v, ok := cfg["threshold"]; ok {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || strings.EqualFold(trimmed, "off") {
			r.Falloff.Mirrored = false
		} else if parsed, err := parseFinite(trimmed); err == nil && parsed >= 0 && parsed <= 1 {
			r.Falloff.Mirrored = true
			r.Falloff.Threshold = parsed
		} else {
			reject("threshold", v, "off or a number within [0,1]")
		}
	}
	if v, ok := cfg["split"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed >= 0 && parsed < 1 {
			r.Split.FrontRatio = parsed
		} else {
			reject("split", v, "a number within [0,1)")
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			r.Seed = &parsed
		} else {
			reject("seed", v, "a 64-bit integer")
		}
	}
	if v, ok := cfg["gradients"]; ok {
		if src, err := noise.ParseGradientSource(v); err == nil {
			r.Gradients = src
		} else {
			errs = append(errs, err)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.Workers = parsed
		} else {
			reject("workers", v, "a non-negative integer")
		}
	}
	if v, ok := cfg["palette"]; ok {
		if p, err := ParsePalette(v); err == nil {
			r.Palette = p
		} else {
			errs = append(errs, err)
		}
	}
	if v, ok := cfg["compression"]; ok {
		if level, err := ParseCompression(v); err == nil {
			r.Compression = level
		} else {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}
