package vcb_test

import (
	"fmt"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/netlist"
	"github.com/vcblab/compiler/vcb"
)

// exampleColor looks up the palette color for k; every kind used by these
// examples is registered, so the ok result is never checked.
func exampleColor(k ink.Kind) ink.Color {
	c, _ := ink.ColorFor(k)
	return c
}

func exampleWireInverterGrid() *blueprint.Grid {
	g := blueprint.NewGrid(5, 1)
	g.Set(0, 0, exampleColor(ink.Read))
	g.Set(1, 0, exampleColor(ink.Not))
	g.Set(2, 0, exampleColor(ink.Write))
	g.Set(3, 0, exampleColor(ink.Trace1))
	g.Set(4, 0, exampleColor(ink.Trace1))

	return g
}

// ExampleCompile compiles a Read -> Not -> Write/Trace1 row and prints the
// resulting entity count and directed connections.
func ExampleCompile() {
	g := exampleWireInverterGrid()

	sg, diags, err := vcb.Compile(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("diagnostics:", len(diags))
	fmt.Println("entities:", len(sg.Entities))
	for _, e := range sg.Connections() {
		fmt.Printf("%d -> %d\n", e[0], e[1])
	}

	// Output:
	// diagnostics: 0
	// entities: 3
	// 0 -> 1
	// 1 -> 2
}

// ExampleAnalyzeCircuit compiles, compresses, times and lints the same
// circuit in one call: the Read input is never written to and the output
// trace is never read from, so default lint settings flag both.
func ExampleAnalyzeCircuit() {
	g := exampleWireInverterGrid()

	report, err := vcb.AnalyzeCircuit(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, d := range report.Diagnostics {
		fmt.Println(d)
	}
	fmt.Println("crit path:", report.Timings.CritPathLen)

	// Output:
	// 0, 0: nothing writes to this trace
	// 2, 0: nothing reads from this trace
	// crit path: 1
}

// ExampleBuildGraphViz renders the compiled circuit as GraphViz dot source.
func ExampleBuildGraphViz() {
	g := exampleWireInverterGrid()

	sg, _, err := vcb.Compile(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	results := vcb.BuildGraphViz(g, sg, netlist.DefaultGraphSettings())

	fmt.Println(results.GraphViz[0])
	fmt.Println(results.GraphViz[len(results.GraphViz)-1])
	fmt.Println("lines:", len(results.GraphViz))

	// Output:
	// digraph {
	// }
	// lines: 7
}
