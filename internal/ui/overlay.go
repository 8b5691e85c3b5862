//go:build ebiten

package ui

import (
	"image/color"

	"terrain-bg/internal/render"
	pcore "terrain-bg/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FieldSource exposes the intermediate grids of the current texture.
type FieldSource interface {
	FalloffField() *pcore.FloatGrid
	HeightField() *pcore.FloatGrid
}

// Overlay draws the falloff mask (key 1) or the composited heights (key 2)
// over the texture.
type Overlay struct {
	src   FieldSource
	scale float64

	showFalloff bool
	showHeight  bool

	falloff *render.ImagePainter
	height  *render.ImagePainter
	stale   bool
}

// NewOverlay constructs an overlay reading from src.
func NewOverlay(src FieldSource, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{src: src, scale: float64(scale), stale: true}
}

// Invalidate marks the cached overlay images out of date.
func (o *Overlay) Invalidate() { o.stale = true }

// Update toggles the overlays.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFalloff = !o.showFalloff
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeight = !o.showHeight
	}
}

// Active lists the enabled overlays by name.
func (o *Overlay) Active() []string {
	var out []string
	if o.showFalloff {
		out = append(out, "falloff")
	}
	if o.showHeight {
		out = append(out, "height")
	}
	return out
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showFalloff && !o.showHeight {
		return
	}
	if o.stale {
		o.rebuild()
	}
	if o.showHeight && o.height != nil {
		o.height.Draw(screen, o.scale)
	}
	if o.showFalloff && o.falloff != nil {
		o.falloff.Draw(screen, o.scale)
	}
}

func (o *Overlay) rebuild() {
	o.stale = false
	if f := o.src.FalloffField(); f != nil {
		if !o.falloff.Matches(f.W, f.H) {
			o.falloff = render.NewImagePainter(f.W, f.H)
		}
		render.FillMaskRGBA(o.falloff.Buffer(), f.Cells(), color.RGBA{R: 255, G: 120, B: 40})
		o.falloff.Upload()
	}
	if g := o.src.HeightField(); g != nil {
		if !o.height.Matches(g.W, g.H) {
			o.height = render.NewImagePainter(g.W, g.H)
		}
		render.FillElevationRGBA(o.height.Buffer(), g.Cells(), g.W, g.H)
		o.height.Upload()
	}
}
