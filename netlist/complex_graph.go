package netlist

import (
	"sort"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

// Purpose classifies a ComplexGraph node's role relative to signal flow.
type Purpose int

const (
	// Other is the default purpose: anything that is not a pure
	// unconnected-on-one-side trace/latch/LED.
	Other Purpose = iota
	// Input nodes have no incoming edges but at least one outgoing edge.
	Input
	// Output nodes have no outgoing edges but at least one incoming edge.
	Output
)

// Node is one entity of a ComplexGraph. From/To hold the canonical pixel
// indices of adjacent nodes — the arena is the ComplexGraph's Nodes map,
// keyed by that same index; From/To express a relation into that arena,
// never ownership, so nodes can be added or detached without dangling
// pointers.
type Node struct {
	ID   pixel.Index
	Kind ink.Kind
	From []pixel.Index
	To   []pixel.Index

	Purpose Purpose

	MinTiming, MaxTiming int
	OnCritPath           bool
	IsOnLoop             bool

	visiting bool
}

// ComplexGraph is a SimpleGraph materialized into nodes with in/out
// adjacency lists. It is derived on demand from a SimpleGraph and dropped
// after whatever analysis needed it; it carries the blueprint's width so
// that lint and GraphViz can recover (x, y) from a node's canonical id.
type ComplexGraph struct {
	Nodes map[pixel.Index]*Node
	Width int
}

// BuildComplexGraph materializes sg's entities and connections into a
// ComplexGraph. Purpose is not assigned here — call ClassifyPurpose once
// construction is complete.
func BuildComplexGraph(sg *SimpleGraph, width int) *ComplexGraph {
	cg := &ComplexGraph{
		Nodes: make(map[pixel.Index]*Node, len(sg.Entities)),
		Width: width,
	}

	for id, kind := range sg.Entities {
		cg.Nodes[id] = &Node{ID: id, Kind: kind, MinTiming: -1, MaxTiming: -1}
	}

	for _, e := range sg.Connections() {
		from, to := cg.Nodes[e[0]], cg.Nodes[e[1]]
		if from == nil || to == nil {
			continue
		}
		connect(from, to)
	}

	return cg
}

// connect records a directed from->to edge in both adjacency lists.
func connect(from, to *Node) {
	from.To = append(from.To, to.ID)
	to.From = append(to.From, from.ID)
}

// detach removes every edge touching n from its neighbors' adjacency
// lists. It does not remove n from any ComplexGraph.Nodes map — callers
// that detach a node are expected to delete it themselves.
func detach(n *Node, nodes map[pixel.Index]*Node) {
	for _, fid := range n.From {
		if f := nodes[fid]; f != nil {
			f.To = removeIndex(f.To, n.ID)
		}
	}
	for _, tid := range n.To {
		if t := nodes[tid]; t != nil {
			t.From = removeIndex(t.From, n.ID)
		}
	}
}

func removeIndex(s []pixel.Index, id pixel.Index) []pixel.Index {
	out := s[:0]
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}

// SortedIDs returns the graph's node ids in ascending order, for
// deterministic iteration.
func (cg *ComplexGraph) SortedIDs() []pixel.Index {
	ids := make([]pixel.Index, 0, len(cg.Nodes))
	for id := range cg.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ClassifyPurpose assigns Input/Output/Other to every node per §4.5: a
// trace/latch/LED node with no incoming edges and at least one outgoing
// edge is an Input; one with no outgoing edges and at least one incoming
// edge is an Output; everything else is Other.
func (cg *ComplexGraph) ClassifyPurpose() {
	for _, n := range cg.Nodes {
		n.Purpose = Other
		if !ink.IsTrace(n.Kind) && !ink.IsLatch(n.Kind) && !ink.IsLED(n.Kind) {
			continue
		}
		switch {
		case len(n.From) == 0 && len(n.To) != 0:
			n.Purpose = Input
		case len(n.To) == 0 && len(n.From) != 0:
			n.Purpose = Output
		}
	}
}
