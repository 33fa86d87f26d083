// Package blueprint declares the narrow boundary interface the compiler
// consumes. Blueprint string encoding/decoding, image-format conversion,
// and the ROM-array/pixel-font generators that produce Blueprints are
// external collaborators out of scope for this module; only the contract
// a Blueprint must satisfy lives here.
package blueprint

import "github.com/vcblab/compiler/ink"

// Blueprint is a three-layer raster; only the Logic layer feeds the
// compiler. DecoOn/DecoOff are cosmetic and are never read by it.
type Blueprint interface {
	// Width returns the blueprint's pixel width.
	Width() int
	// Height returns the blueprint's pixel height.
	Height() int
	// At returns the Logic-layer color at (x, y). Callers must only invoke
	// At with 0 <= x < Width() and 0 <= y < Height().
	At(x, y int) ink.Color
}

// Grid is a minimal in-memory Blueprint backed by a flat, row-major Color
// slice. It is provided so tests and small callers do not need their own
// Blueprint implementation; real blueprint loading (string codec, image
// decoding) lives outside this module.
type Grid struct {
	width, height int
	pixels        []ink.Color
}

// NewGrid allocates a Grid of the given dimensions, every pixel initialized
// to ink.Color{} (the zero value, which maps to ink.Empty).
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		pixels: make([]ink.Color, width*height),
	}
}

// Width returns the grid's pixel width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's pixel height.
func (g *Grid) Height() int { return g.height }

// At returns the color at (x, y).
func (g *Grid) At(x, y int) ink.Color {
	return g.pixels[y*g.width+x]
}

// Set paints the pixel at (x, y) with c.
func (g *Grid) Set(x, y int, c ink.Color) {
	g.pixels[y*g.width+x] = c
}
