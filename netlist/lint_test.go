package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/netlist"
)

func TestLint_GateBelowMinFanIn(t *testing.T) {
	// And fed by a single input and nothing downstream: under default
	// settings (check_gates enabled, min 2 inputs) this is flagged twice.
	bp := gridOf(t, 3, 1, []ink.Kind{ink.Read, ink.And, ink.Empty})

	sg, _, err := netlist.Compile(bp)
	require.NoError(t, err)

	cg := netlist.BuildComplexGraph(sg, 3)
	findings := netlist.Lint(cg)

	var messages []string
	for _, d := range findings {
		messages = append(messages, d.Message)
	}
	assert.Contains(t, messages, "And has less than 2 inputs")
	assert.Contains(t, messages, "And has less than 1 outputs")
}

func TestLint_WithCheckGatesDisabled(t *testing.T) {
	bp := gridOf(t, 3, 1, []ink.Kind{ink.Read, ink.And, ink.Empty})

	sg, _, err := netlist.Compile(bp)
	require.NoError(t, err)

	cg := netlist.BuildComplexGraph(sg, 3)
	findings := netlist.Lint(cg, netlist.WithCheckGates(false))

	for _, d := range findings {
		assert.NotEqual(t, "And has less than 2 inputs", d.Message)
	}
}

func TestLint_UnconnectedTrace(t *testing.T) {
	bp := gridOf(t, 1, 1, []ink.Kind{ink.Trace1})

	sg, _, err := netlist.Compile(bp)
	require.NoError(t, err)

	cg := netlist.BuildComplexGraph(sg, 1)
	findings := netlist.Lint(cg)

	var messages []string
	for _, d := range findings {
		messages = append(messages, d.Message)
	}
	assert.Contains(t, messages, "nothing reads from this trace")
	assert.Contains(t, messages, "nothing writes to this trace")
}

func TestLint_WithCheckTracesDisabled(t *testing.T) {
	bp := gridOf(t, 1, 1, []ink.Kind{ink.Trace1})

	sg, _, err := netlist.Compile(bp)
	require.NoError(t, err)

	cg := netlist.BuildComplexGraph(sg, 1)
	findings := netlist.Lint(cg, netlist.WithCheckTraces(false))
	assert.Empty(t, findings)
}
