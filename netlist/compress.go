package netlist

import "github.com/vcblab/compiler/ink"

// Compress removes pass-through trace nodes from sg and returns a new,
// smaller SimpleGraph. A trace node t is eligible when it has exactly one
// incoming edge and at least one outgoing edge: every (from, to) pair
// spanning t is rewired directly, and t is dropped.
//
// The pass runs once over a snapshot of the node list; edges created while
// rewiring one node are not themselves reconsidered for removal, matching
// the reference implementation's single-pass behavior. Running Compress
// twice on an already-compressed graph is a no-op (idempotent): no
// remaining node can still have exactly one incoming edge and a trace kind
// eligible for further removal introduced by the first pass, since the
// pass already rewired every such node directly to its non-trace (or
// already-irreducible) successors.
func Compress(sg *SimpleGraph, width int) *SimpleGraph {
	cg := BuildComplexGraph(sg, width)

	snapshot := cg.SortedIDs()
	for _, id := range snapshot {
		n := cg.Nodes[id]
		if n == nil {
			continue
		}
		if !ink.IsTrace(n.Kind) || len(n.From) != 1 || len(n.To) == 0 {
			continue
		}

		from := cg.Nodes[n.From[0]]
		for _, toID := range n.To {
			to := cg.Nodes[toID]
			if from == nil || to == nil {
				continue
			}
			connect(from, to)
		}

		detach(n, cg.Nodes)
		delete(cg.Nodes, id)
	}

	out := newSimpleGraph()
	for id, n := range cg.Nodes {
		out.Entities[id] = n.Kind
	}
	for id, n := range cg.Nodes {
		for _, toID := range n.To {
			out.addConnection(id, toID)
		}
	}

	return out
}
