package netlist

import (
	"sort"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

// edge is a directed pair of canonical class roots.
type edge struct {
	from, to pixel.Index
}

// SimpleGraph is the compiler's first durable artifact: a mapping from
// canonical pixel-class roots (entities whose kind is active or trace) to
// their InkKind, plus the directed connections discovered between them.
type SimpleGraph struct {
	Entities    map[pixel.Index]ink.Kind
	connections map[edge]struct{}
}

func newSimpleGraph() *SimpleGraph {
	return &SimpleGraph{
		Entities:    make(map[pixel.Index]ink.Kind),
		connections: make(map[edge]struct{}),
	}
}

func (sg *SimpleGraph) addConnection(from, to pixel.Index) {
	sg.connections[edge{from: from, to: to}] = struct{}{}
}

// Connections returns the graph's directed (from, to) pairs, sorted by
// (from, to) for deterministic iteration.
func (sg *SimpleGraph) Connections() [][2]pixel.Index {
	out := make([][2]pixel.Index, 0, len(sg.connections))
	for e := range sg.connections {
		out = append(out, [2]pixel.Index{e.from, e.to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// HasConnection reports whether the directed edge from->to is present.
func (sg *SimpleGraph) HasConnection(from, to pixel.Index) bool {
	_, ok := sg.connections[edge{from: from, to: to}]
	return ok
}

// SortedEntities returns the graph's entity roots in ascending order, for
// deterministic iteration by callers (graph construction, GraphViz, etc.).
func (sg *SimpleGraph) SortedEntities() []pixel.Index {
	out := make([]pixel.Index, 0, len(sg.Entities))
	for id := range sg.Entities {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
