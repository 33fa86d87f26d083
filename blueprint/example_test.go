package blueprint_test

import (
	"fmt"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
)

// ExampleGrid demonstrates painting a minimal in-memory Blueprint and
// reading it back through the Blueprint interface.
func ExampleGrid() {
	g := blueprint.NewGrid(2, 1)
	g.Set(0, 0, ink.RGBA(46, 71, 93, 255))

	var bp blueprint.Blueprint = g
	fmt.Println(bp.Width(), bp.Height())
	fmt.Println(ink.Comp(bp.At(0, 0)) == ink.Read)
	fmt.Println(ink.Comp(bp.At(1, 0)) == ink.Empty)

	// Output:
	// 2 1
	// true
	// true
}
