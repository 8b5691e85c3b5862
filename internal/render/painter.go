//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// ImagePainter keeps an ebiten image in sync with an RGBA pixel buffer.
type ImagePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewImagePainter allocates a painter for a w×h image.
func NewImagePainter(w, h int) *ImagePainter {
	return &ImagePainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Buffer exposes the RGBA staging buffer. Call Upload after filling it.
func (p *ImagePainter) Buffer() []byte { return p.buf }

// Upload copies the staging buffer into the image.
func (p *ImagePainter) Upload() {
	p.img.WritePixels(p.buf)
}

// Draw blits the image onto dst scaled by scale.
func (p *ImagePainter) Draw(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}

// Matches reports whether the painter can hold a w×h image.
func (p *ImagePainter) Matches(w, h int) bool {
	return p != nil && p.w == w && p.h == h
}
