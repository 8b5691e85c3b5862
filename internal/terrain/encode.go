package terrain

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"terrain-bg/pkg/core"
)

// ErrImageEncoding reports that the raster could not be encoded.
var ErrImageEncoding = errors.New("image encoding failed")

// Image is an interleaved RGB raster.
type Image struct {
	Width, Height int
	Pix           []byte // len == Width*Height*3
}

// Coverage counts pixels per biome.
type Coverage [biomeCount]int

// Fraction returns the share of pixels in biome b.
func (c Coverage) Fraction(b Biome) float64 {
	total := 0
	for _, n := range c {
		total += n
	}
	if total == 0 || b >= biomeCount {
		return 0
	}
	return float64(c[b]) / float64(total)
}

// Rasterize classifies every cell of field and paints it with p.
func Rasterize(field *core.FloatGrid, p Palette) (*Image, Coverage) {
	var cov Coverage
	cells := field.Cells()
	pix := make([]byte, len(cells)*3)
	for i, v := range cells {
		b := Classify(v)
		cov[b]++
		c := p.Color(b)
		base := i * 3
		pix[base+0] = c.R
		pix[base+1] = c.G
		pix[base+2] = c.B
	}
	return &Image{Width: field.W, Height: field.H, Pix: pix}, cov
}

// RGBA expands the raster into an opaque image.RGBA.
func (img *Image) RGBA() (*image.RGBA, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("raster %dx%d: %w", img.Width, img.Height, ErrImageEncoding)
	}
	if want := img.Width * img.Height * 3; len(img.Pix) != want {
		return nil, fmt.Errorf("raster buffer has %d bytes, want %d: %w", len(img.Pix), want, ErrImageEncoding)
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i < len(img.Pix); i, j = i+3, j+4 {
		out.Pix[j+0] = img.Pix[i+0]
		out.Pix[j+1] = img.Pix[i+1]
		out.Pix[j+2] = img.Pix[i+2]
		out.Pix[j+3] = 0xff
	}
	return out, nil
}

// ImageFromRGBA drops the alpha channel of src.
func ImageFromRGBA(src *image.RGBA) *Image {
	b := src.Bounds()
	img := &Image{Width: b.Dx(), Height: b.Dy(), Pix: make([]byte, b.Dx()*b.Dy()*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			img.Pix[i+0] = row[x*4+0]
			img.Pix[i+1] = row[x*4+1]
			img.Pix[i+2] = row[x*4+2]
			i += 3
		}
	}
	return img
}

// ParseCompression maps a flag value to a PNG compression level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	}
	return png.DefaultCompression, fmt.Errorf("compression %q: %w", s, ErrInvalidParameter)
}

// EncodePNG losslessly encodes the raster.
func EncodePNG(img *Image, level png.CompressionLevel) ([]byte, error) {
	rgba, err := img.RGBA()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("png: %v: %w", err, ErrImageEncoding)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 converts encoded image bytes into text suitable for a data URI.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
