package netlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

// PosMode selects how (if at all) GraphViz node positions are emitted.
type PosMode int

const (
	// PosNone emits no pos attribute; GraphViz lays the graph out itself.
	PosNone PosMode = iota
	// PosAbsolute emits pos="x,y!", pinning nodes to the blueprint layout.
	PosAbsolute
	// PosSuggested emits pos="x,y" as a hint GraphViz may override.
	PosSuggested
)

// GraphSettings configures BuildGraphViz.
type GraphSettings struct {
	Compressed     bool
	IOClusters     bool
	Timings        bool
	TimingLabels   bool
	Positions      PosMode
	Scale          float64
	HighlightLoops bool
}

// DefaultGraphSettings returns GraphSettings matching the reference
// compiler's defaults: no compression, no clustering, no timing, no
// positions, a position scale of 1, and HighlightLoops set. BuildGraphViz
// does not read HighlightLoops, so loops are not highlighted in its output.
func DefaultGraphSettings() GraphSettings {
	return GraphSettings{Scale: 1.0, HighlightLoops: true}
}

// GraphResults bundles the rendered GraphViz source with the timing
// statistics computed along the way (sentinel -1 values if timing was not
// requested).
type GraphResults struct {
	GraphViz []string
	Stats    TimingStats
}

var sentinelTimingStats = TimingStats{MaxMinTime: -1, MinMaxTime: -1, MaxMaxTime: -1, CritPathLen: -1}

// BuildGraphViz renders sg as a `digraph { ... }` body: one line per node,
// one per edge, honoring settings for compression, clustering, timing
// labels, node positions and critical-path highlighting.
func BuildGraphViz(sg *SimpleGraph, width, height int, settings GraphSettings) GraphResults {
	if settings.Timings {
		settings.IOClusters = false
	}

	graph := sg
	if settings.Compressed {
		graph = Compress(sg, width)
	}

	cg := BuildComplexGraph(graph, width)
	cg.ClassifyPurpose()

	stats := sentinelTimingStats
	if settings.Timings || settings.TimingLabels {
		stats, _ = ComputeTimings(cg)
	}

	var dot []string
	dot = append(dot, "digraph {")

	for _, id := range cg.SortedIDs() {
		dot = append(dot, renderNode(cg, id, width, height, settings))
	}

	for _, e := range graph.Connections() {
		dot = append(dot, renderEdge(cg, e[0], e[1]))
	}

	dot = append(dot, "}")

	return GraphResults{GraphViz: dot, Stats: stats}
}

func renderNode(cg *ComplexGraph, id pixel.Index, width, height int, settings GraphSettings) string {
	n := cg.Nodes[id]

	var attrs []attr
	label := ink.Desc(n.Kind)
	if settings.TimingLabels {
		label += fmt.Sprintf(" (%d-%d)", n.MinTiming, n.MaxTiming)
	}
	attrs = append(attrs, attr{"label", label})

	cluster := ""
	switch {
	case settings.IOClusters:
		switch n.Purpose {
		case Input:
			cluster = "input"
		case Output:
			cluster = "output"
		}
	case settings.Timings:
		if n.MaxTiming >= 0 {
			cluster = fmt.Sprintf("%d", n.MaxTiming)
		}
	}

	if settings.Positions != PosNone {
		x, y := int(id)%width, int(id)/width
		posX := float64(x) * settings.Scale
		posY := float64(height-y) * settings.Scale
		pos := fmt.Sprintf("%g,%g", posX, posY)
		if settings.Positions == PosAbsolute {
			pos += "!"
		}
		attrs = append(attrs, attr{"pos", pos})
	}

	if n.OnCritPath {
		attrs = append(attrs, attr{"color", "red"})
	}

	body := fmt.Sprintf("%d[%s]", id, renderAttrs(attrs))
	if cluster != "" {
		return fmt.Sprintf("  subgraph cluster_%s { %s };", cluster, body)
	}

	return fmt.Sprintf("  %s;", body)
}

func renderEdge(cg *ComplexGraph, from, to pixel.Index) string {
	fn, tn := cg.Nodes[from], cg.Nodes[to]

	var attrs []attr
	if fn.OnCritPath && tn.OnCritPath && fn.MaxTiming >= tn.MaxTiming-1 {
		attrs = append(attrs, attr{"color", "red"})
	}

	return fmt.Sprintf("  %d->%d[%s];", from, to, renderAttrs(attrs))
}

type attr struct {
	key, value string
}

func renderAttrs(attrs []attr) string {
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].key < attrs[j].key })
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s=%q", a.key, a.value)
	}

	return strings.Join(parts, ",")
}
