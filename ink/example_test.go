package ink_test

import (
	"fmt"

	"github.com/vcblab/compiler/ink"
)

// ExampleComp demonstrates mapping a handful of bit-exact RGBA colors to
// their InkKind, including the Annotation/Filler collapse to Empty.
func ExampleComp() {
	fmt.Println(ink.Comp(ink.RGBA(46, 71, 93, 255)) == ink.Read)
	fmt.Println(ink.Comp(ink.RGBA(58, 69, 81, 255)) == ink.Empty) // Annotation
	fmt.Println(ink.Comp(ink.RGBA(1, 2, 3, 4)) == ink.Empty)      // unrecognized

	// Output:
	// true
	// true
	// true
}

// ExampleSameFamily shows that two Trace colors merge under the local
// adjacency rule even though their bit-level ordinals differ, while a
// Trace and a Bus never do.
func ExampleSameFamily() {
	fmt.Println(ink.SameFamily(ink.Trace1, ink.Trace9))
	fmt.Println(ink.SameFamily(ink.Trace1, ink.Bus1))

	// Output:
	// true
	// false
}
