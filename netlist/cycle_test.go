package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/netlist"
)

// TestCompile_CriticalPathWithCycle builds Read(input) -> And -> Not -> And
// (feedback routed through its own trace run so it merges into a distinct
// entity from the forward path) and checks that timing finishes with a
// finite, non-negative critical path and reports the feedback node as a
// cycle.
func TestCompile_CriticalPathWithCycle(t *testing.T) {
	width, height := 7, 3
	kinds := make([]ink.Kind, width*height)
	set := func(x, y int, k ink.Kind) { kinds[y*width+x] = k }

	// forward path: Read0 -> And0 -> (Write0 Read1) -> Not0 -> (Write3 Trace1)
	set(0, 0, ink.Read)
	set(1, 0, ink.And)
	set(2, 0, ink.Write)
	set(3, 0, ink.Read)
	set(4, 0, ink.Not)
	set(5, 0, ink.Write)
	set(6, 0, ink.Trace1)

	// feedback path: Not0 -down-> Write2 -row2-> Trace2 run -up-> Read2 -> And0
	set(1, 1, ink.Read)
	set(4, 1, ink.Write)
	set(1, 2, ink.Trace2)
	set(2, 2, ink.Trace2)
	set(3, 2, ink.Trace2)
	set(4, 2, ink.Trace2)

	bp := gridOf(t, width, height, kinds)

	sg, diags, err := netlist.Compile(bp)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Len(t, sg.Entities, 6)

	cg := netlist.BuildComplexGraph(sg, width)
	cg.ClassifyPurpose()

	inputs, outputs := 0, 0
	for _, n := range cg.Nodes {
		switch n.Purpose {
		case netlist.Input:
			inputs++
		case netlist.Output:
			outputs++
		}
	}
	assert.Equal(t, 1, inputs)
	assert.Equal(t, 1, outputs)

	stats, cycles := netlist.ComputeTimings(cg)
	assert.GreaterOrEqual(t, stats.CritPathLen, 0)
	require.NotEmpty(t, cycles)
	for _, d := range cycles {
		assert.Equal(t, netlist.CycleDetected, d.Kind)
	}

	loopFound := false
	for _, n := range cg.Nodes {
		if n.IsOnLoop {
			loopFound = true
		}
	}
	assert.True(t, loopFound)
}
