package ink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcblab/compiler/ink"
)

func TestComp_RecognizedColors(t *testing.T) {
	assert.Equal(t, ink.Cross, ink.Comp(ink.RGBA(102, 120, 142, 255)))
	assert.Equal(t, ink.Read, ink.Comp(ink.RGBA(46, 71, 93, 255)))
	assert.Equal(t, ink.And, ink.Comp(ink.RGBA(255, 198, 99, 255)))
	assert.Equal(t, ink.Wifi3, ink.Comp(ink.RGBA(255, 0, 143, 255)))
}

func TestComp_AnnotationAndFillerCollapseToEmpty(t *testing.T) {
	assert.Equal(t, ink.Empty, ink.Comp(ink.RGBA(58, 69, 81, 255)))
	assert.Equal(t, ink.Empty, ink.Comp(ink.RGBA(140, 171, 161, 255)))
}

func TestComp_UnrecognizedColorIsEmpty(t *testing.T) {
	assert.Equal(t, ink.Empty, ink.Comp(ink.RGBA(1, 2, 3, 4)))
}

func TestDesc_TraceFamilySharesLabel(t *testing.T) {
	assert.Equal(t, "Trace", ink.Desc(ink.Write))
	assert.Equal(t, "Trace", ink.Desc(ink.Read))
	assert.Equal(t, "Trace", ink.Desc(ink.Trace9))
	assert.Equal(t, "And", ink.Desc(ink.And))
}

func TestColorFor_RoundTrips(t *testing.T) {
	c, ok := ink.ColorFor(ink.Cross)
	assert.True(t, ok)
	assert.Equal(t, ink.Comp(c), ink.Cross)

	_, ok = ink.ColorFor(ink.Kind(0xDEADBEEF))
	assert.False(t, ok)
}
