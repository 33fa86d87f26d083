package pixel

import (
	"errors"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
)

// ErrInvalidGeometry indicates a blueprint has zero width or zero height.
// This is the one fatal failure the compiler surfaces to its caller; every
// other anomaly (unmatched tunnels, lint findings, cycles) is data.
var ErrInvalidGeometry = errors.New("pixel: blueprint has zero width or height")

// Index addresses a single cell of a Lattice: Index(y*Width + x).
type Index int

// Lattice is a width x height array of ink.Kind, produced from a
// blueprint's Logic layer (DecoOn/DecoOff are never consulted).
type Lattice struct {
	Width, Height int
	Kinds         []ink.Kind // row-major, len == Width*Height
}

// NewLattice reads bp's Logic layer through ink.Comp and returns the
// resulting Lattice. It returns ErrInvalidGeometry if bp has zero width or
// height.
func NewLattice(bp blueprint.Blueprint) (*Lattice, error) {
	width, height := bp.Width(), bp.Height()
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidGeometry
	}

	kinds := make([]ink.Kind, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			kinds[y*width+x] = ink.Comp(bp.At(x, y))
		}
	}

	return &Lattice{Width: width, Height: height, Kinds: kinds}, nil
}

// Index returns the Index of pixel (x, y). Callers must ensure the
// coordinate is in bounds; use InBounds to check.
func (l *Lattice) Index(x, y int) Index {
	return Index(y*l.Width + x)
}

// Coordinate returns the (x, y) position of Index i.
func (l *Lattice) Coordinate(i Index) (x, y int) {
	return int(i) % l.Width, int(i) / l.Width
}

// InBounds reports whether (x, y) lies within the lattice.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the InkKind at Index i.
func (l *Lattice) At(i Index) ink.Kind {
	return l.Kinds[i]
}

// Size returns Width*Height, the number of pixels in the lattice.
func (l *Lattice) Size() int {
	return l.Width * l.Height
}
