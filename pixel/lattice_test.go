package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

func TestNewLattice_RejectsZeroGeometry(t *testing.T) {
	_, err := pixel.NewLattice(blueprint.NewGrid(0, 3))
	assert.ErrorIs(t, err, pixel.ErrInvalidGeometry)

	_, err = pixel.NewLattice(blueprint.NewGrid(3, 0))
	assert.ErrorIs(t, err, pixel.ErrInvalidGeometry)
}

func TestNewLattice_MapsInkAndLayout(t *testing.T) {
	g := blueprint.NewGrid(2, 2)
	g.Set(0, 0, ink.RGBA(46, 71, 93, 255))  // Read
	g.Set(1, 0, ink.RGBA(77, 56, 62, 255))  // Write
	g.Set(0, 1, ink.RGBA(1, 2, 3, 4))       // unrecognized -> Empty
	// (1,1) left default zero Color{} -> Empty

	lat, err := pixel.NewLattice(g)
	require.NoError(t, err)
	require.Equal(t, 2, lat.Width)
	require.Equal(t, 2, lat.Height)

	assert.Equal(t, ink.Read, lat.At(lat.Index(0, 0)))
	assert.Equal(t, ink.Write, lat.At(lat.Index(1, 0)))
	assert.Equal(t, ink.Empty, lat.At(lat.Index(0, 1)))
	assert.Equal(t, ink.Empty, lat.At(lat.Index(1, 1)))

	x, y := lat.Coordinate(lat.Index(1, 0))
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)

	assert.True(t, lat.InBounds(1, 1))
	assert.False(t, lat.InBounds(2, 0))
	assert.False(t, lat.InBounds(0, -1))
}
