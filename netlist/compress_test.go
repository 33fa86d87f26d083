package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/netlist"
)

func TestCompress_RemovesPassThroughTrace(t *testing.T) {
	// Read -> Not -> Write/Trace1/Read run -> Not2: the middle run is one
	// trace class (trace colors merge on contact) with exactly one incoming
	// and one outgoing edge, and must be elided, rewiring Not directly to
	// Not2.
	bp := gridOf(t, 7, 1, []ink.Kind{
		ink.Read, ink.Not, ink.Write, ink.Trace1, ink.Read, ink.Not, ink.Empty,
	})

	sg, diags, err := netlist.Compile(bp)
	require.NoError(t, err)
	assert.Empty(t, diags)

	compressed := netlist.Compress(sg, 7)

	for id, k := range compressed.Entities {
		if ink.IsTrace(k) {
			cg := netlist.BuildComplexGraph(compressed, 7)
			n := cg.Nodes[id]
			assert.False(t, len(n.From) == 1 && len(n.To) >= 1,
				"pass-through trace %v should have been compressed away", id)
		}
	}
}

func TestCompress_Idempotent(t *testing.T) {
	bp := gridOf(t, 7, 1, []ink.Kind{
		ink.Read, ink.Not, ink.Write, ink.Trace1, ink.Read, ink.Not, ink.Empty,
	})

	sg, _, err := netlist.Compile(bp)
	require.NoError(t, err)

	once := netlist.Compress(sg, 7)
	twice := netlist.Compress(once, 7)

	assert.Equal(t, once.Entities, twice.Entities)
	assert.Equal(t, once.Connections(), twice.Connections())
}
