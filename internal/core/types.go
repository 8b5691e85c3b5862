// Package core holds small value types shared by the tools and the preview.
package core

// Size describes the dimensions of a raster or viewport in pixels.
type Size struct {
	W int
	H int
}

// Landscape reports whether the area is wider than it is tall.
func (s Size) Landscape() bool { return s.W > s.H }

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }
