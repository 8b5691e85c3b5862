package terrain

import (
	"strconv"
	"strings"

	"terrain-bg/internal/core"
)

// Parameters describes the request for the HUD and the CLI's verbose output.
func (r Request) Parameters() core.ParameterSnapshot {
	seed := "random"
	if r.Seed != nil {
		seed = strconv.FormatInt(*r.Seed, 10)
	}
	threshold := "off"
	if r.Falloff.Mirrored {
		threshold = strconv.FormatFloat(r.Falloff.Threshold, 'f', -1, 64)
	}
	palette := r.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}
	groups := []core.ParameterGroup{
		{
			Name: "Image",
			Params: []core.Parameter{
				intParam("w", "Width", r.Width),
				intParam("h", "Height", r.Height),
				stringParam("seed", "Seed", seed),
				floatParam("split", "Front band ratio", r.Split.FrontRatio),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("scale", "Scale", r.Octaves.Scale),
				intParam("octaves", "Octaves", r.Octaves.Count),
				floatParam("persistence", "Persistence", r.Octaves.Persistence),
				floatParam("lacunarity", "Lacunarity", r.Octaves.Lacunarity),
				stringParam("gradients", "Gradients", r.Gradients.String()),
			},
		},
		{
			Name: "Falloff",
			Params: []core.Parameter{
				stringParam("shape", "Shape", r.Falloff.Shape.String()),
				floatParam("a", "Exponent A", r.Falloff.A),
				floatParam("b", "Steepness B", r.Falloff.B),
				floatParam("band", "Band", r.Falloff.Band),
				stringParam("threshold", "Threshold", threshold),
			},
		},
		{
			Name: "Palette",
			Params: []core.Parameter{
				stringParam("palette", "Colors", strings.Join(palette.Hex()[:BiomeOutOfRange], ",")),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the preview HUD can adjust.
func (r *Request) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 12, HasMin: true, HasMax: true},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 5, Min: 1, HasMin: true},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Step: 0.1, Min: 1, Max: 4, HasMin: true, HasMax: true},
		{Key: "a", Label: "Exponent A", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 10, HasMin: true, HasMax: true},
		{Key: "b", Label: "Steepness B", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 16, HasMin: true, HasMax: true},
		{Key: "threshold", Label: "Threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter, clamped to its control
// bounds. It reports whether key was recognised.
func (r *Request) SetIntParameter(key string, value int) bool {
	ctrl, ok := r.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	switch key {
	case "octaves":
		r.Octaves.Count = v
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter, clamped to its
// control bounds. Setting the threshold also enables mirroring.
func (r *Request) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := r.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	v := ctrl.Clamp(value)
	switch key {
	case "scale":
		r.Octaves.Scale = v
	case "persistence":
		r.Octaves.Persistence = v
	case "lacunarity":
		r.Octaves.Lacunarity = v
	case "a":
		r.Falloff.A = v
	case "b":
		r.Falloff.B = v
	case "threshold":
		r.Falloff.Threshold = v
		r.Falloff.Mirrored = true
	default:
		return false
	}
	return true
}

// FloatParameter reads back a value adjustable through the HUD.
func (r *Request) FloatParameter(key string) (float64, bool) {
	switch key {
	case "octaves":
		return float64(r.Octaves.Count), true
	case "scale":
		return r.Octaves.Scale, true
	case "persistence":
		return r.Octaves.Persistence, true
	case "lacunarity":
		return r.Octaves.Lacunarity, true
	case "a":
		return r.Falloff.A, true
	case "b":
		return r.Falloff.B, true
	case "threshold":
		return r.Falloff.Threshold, true
	}
	return 0, false
}

func (r *Request) control(key string) (core.ParameterControl, bool) {
	for _, c := range r.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
