package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
)

// gridOf builds a blueprint.Grid of the given dimensions from a row-major
// slice of ink.Kind, translating each non-Empty kind back through the
// palette. It fails the test immediately if a kind has no registered
// color or the slice is the wrong length.
func gridOf(t *testing.T, width, height int, kinds []ink.Kind) *blueprint.Grid {
	t.Helper()
	require.Len(t, kinds, width*height)

	g := blueprint.NewGrid(width, height)
	for i, k := range kinds {
		if k == ink.Empty {
			continue
		}
		c, ok := ink.ColorFor(k)
		require.Truef(t, ok, "kind %v at index %d has no palette color", k, i)
		g.Set(i%width, i/width, c)
	}

	return g
}
