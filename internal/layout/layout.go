// Package layout picks texture dimensions and falloff settings for the
// viewport a background is generated for, and formats the CSS that shows it.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"terrain-bg/internal/core"
	"terrain-bg/internal/terrain"
)

// Variant is one of the fixed page layouts.
type Variant uint8

const (
	Mobile Variant = iota
	Tablet
	Desktop
)

// Viewport widths at which the next variant takes over.
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1200
)

// MobileFrontRatio is the share of the mobile texture kept flat for content.
const MobileFrontRatio = 0.3

func (v Variant) String() string {
	switch v {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// ParseVariant maps a flag value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mobile":
		return Mobile, nil
	case "tablet":
		return Tablet, nil
	case "desktop":
		return Desktop, nil
	}
	return Desktop, fmt.Errorf("layout variant %q: %w", s, terrain.ErrInvalidParameter)
}

// ForViewport selects the variant for a viewport width in CSS pixels.
func ForViewport(width int) Variant {
	switch {
	case width < TabletMinWidth:
		return Mobile
	case width < DesktopMinWidth:
		return Tablet
	default:
		return Desktop
	}
}

// Size is the texture size generated for the variant.
func (v Variant) Size() core.Size {
	switch v {
	case Mobile:
		return core.Size{W: 270, H: 600}
	case Tablet:
		return core.Size{W: 480, H: 360}
	default:
		return core.Size{W: 640, H: 360}
	}
}

// Request returns a generation request tuned for the variant. The seed is
// left unset.
func (v Variant) Request() terrain.Request {
	req := terrain.DefaultRequest()
	size := v.Size()
	req.Width, req.Height = size.W, size.H
	switch v {
	case Mobile:
		req.Falloff = terrain.SteepFalloff()
		req.Falloff.Shape = terrain.ShapeVertical
		req.Split = terrain.Split{FrontRatio: MobileFrontRatio}
	case Tablet:
		req.Falloff = terrain.SteepFalloff()
	default:
		req.Falloff = terrain.GentleFalloff()
	}
	return req
}

// Orientation is the fallback sizing used when only the viewport's aspect is
// known: landscape viewports get a 16:9 grid scaled by 40, everything else a
// 9:20 grid scaled by 30.
func Orientation(viewport core.Size) core.Size {
	if viewport.Landscape() {
		return core.Size{W: 16 * 40, H: 9 * 40}
	}
	return core.Size{W: 9 * 30, H: 20 * 30}
}

// OrientationRequest is the default request resized by Orientation.
func OrientationRequest(viewport core.Size) terrain.Request {
	req := terrain.DefaultRequest()
	size := Orientation(viewport)
	req.Width, req.Height = size.W, size.H
	return req
}

// ParseViewport reads a "WIDTHxHEIGHT" string.
func ParseViewport(s string) (core.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return core.Size{}, fmt.Errorf("viewport %q: want WIDTHxHEIGHT: %w", s, terrain.ErrInvalidParameter)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return core.Size{}, fmt.Errorf("viewport width %q: %w", w, terrain.ErrInvalidParameter)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return core.Size{}, fmt.Errorf("viewport height %q: %w", h, terrain.ErrInvalidParameter)
	}
	size := core.Size{W: width, H: height}
	if !size.Valid() {
		return core.Size{}, fmt.Errorf("viewport %dx%d must be positive: %w", width, height, terrain.ErrInvalidParameter)
	}
	return size, nil
}

// CSS returns the declarations that stretch the payload over the viewport.
func CSS(p *terrain.Payload, viewport core.Size) string {
	return fmt.Sprintf("background-image: url(%s); background-size: %dpx %dpx;", p.DataURI(), viewport.W, viewport.H)
}
