package netlist

import (
	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

// TimingStats summarizes timing propagation across a ComplexGraph's Output
// nodes: MaxMinTime is the latest earliest-arrival among outputs,
// MinMaxTime the earliest latest-arrival, MaxMaxTime the latest
// latest-arrival (the critical-path length). All fields are -1 when the
// graph has no Output nodes.
type TimingStats struct {
	MaxMinTime  int
	MinMaxTime  int
	MaxMaxTime  int
	CritPathLen int
}

// timingFrame is one suspended call of the recursive propagation rule,
// reified so ComputeTimings can run iteratively instead of recursing —
// a blueprint large enough to need this analysis is also large enough to
// overflow a language call stack doing it recursively.
type timingFrame struct {
	id             pixel.Index
	nextMin, nextMax int
	children       []pixel.Index
	idx            int
}

// ComputeTimings resets every node's timing state, propagates arrival
// ticks depth-first from every Input node (ClassifyPurpose must have been
// called first), and backtraces the critical path. A cycle encountered
// mid-propagation is cut (the revisited node is marked IsOnLoop) and does
// not abort the computation; each node left with IsOnLoop set is reported
// as a CycleDetected diagnostic.
func ComputeTimings(cg *ComplexGraph) (TimingStats, []Diagnostic) {
	for _, n := range cg.Nodes {
		n.MinTiming, n.MaxTiming = -1, -1
		n.OnCritPath = false
		n.IsOnLoop = false
		n.visiting = false
	}

	for _, id := range cg.SortedIDs() {
		n := cg.Nodes[id]
		if n.Purpose == Input {
			propagate(cg, id, 0, 0)
		}
	}

	var diags []Diagnostic
	for _, id := range cg.SortedIDs() {
		n := cg.Nodes[id]
		if n.IsOnLoop {
			x, y := int(id)%cg.Width, int(id)/cg.Width
			diags = append(diags, Diagnostic{Kind: CycleDetected, X: x, Y: y, Message: "cycle detected"})
		}
	}

	return aggregateStats(cg), diags
}

// enterTiming performs the recursive rule's per-call entry step: cycle
// check, min/max merge, and computing the tick deltas for this node's
// successors. proceed is false when the node is already on the active
// propagation path (a cycle was cut).
func enterTiming(n *Node, tmin, tmax int) (proceed bool, nextMin, nextMax int) {
	if n.visiting {
		n.IsOnLoop = true
		return false, 0, 0
	}

	if n.MinTiming < 0 {
		n.MinTiming = tmin
	} else if tmin < n.MinTiming {
		n.MinTiming = tmin
	}
	if tmax > n.MaxTiming {
		n.MaxTiming = tmax
	}

	n.visiting = true

	nextMin, nextMax = n.MinTiming, n.MaxTiming
	if !ink.IsTrace(n.Kind) {
		nextMin++
		nextMax++
	}

	return true, nextMin, nextMax
}

// propagate runs the depth-first timing rule from root with explicit
// stack frames standing in for the call stack.
func propagate(cg *ComplexGraph, root pixel.Index, tmin, tmax int) {
	start := cg.Nodes[root]
	proceed, nextMin, nextMax := enterTiming(start, tmin, tmax)
	if !proceed {
		return
	}

	stack := []timingFrame{{id: root, nextMin: nextMin, nextMax: nextMax, children: start.To}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.children) {
			cg.Nodes[top.id].visiting = false
			stack = stack[:len(stack)-1]
			continue
		}

		childID := top.children[top.idx]
		top.idx++

		child := cg.Nodes[childID]
		proceed, cNextMin, cNextMax := enterTiming(child, top.nextMin, top.nextMax)
		if proceed {
			stack = append(stack, timingFrame{id: childID, nextMin: cNextMin, nextMax: cNextMax, children: child.To})
		}
	}
}

func aggregateStats(cg *ComplexGraph) TimingStats {
	maxMinTime, minMaxTime, maxMaxTime := -1, -1, -1

	for _, id := range cg.SortedIDs() {
		n := cg.Nodes[id]
		if n.Purpose != Output {
			continue
		}
		if n.MinTiming > maxMinTime {
			maxMinTime = n.MinTiming
		}
		if minMaxTime == -1 || n.MaxTiming < minMaxTime {
			minMaxTime = n.MaxTiming
		}
		if n.MaxTiming > maxMaxTime {
			maxMaxTime = n.MaxTiming
		}
	}

	backtraceCriticalPath(cg, maxMaxTime)

	return TimingStats{
		MaxMinTime:  maxMinTime,
		MinMaxTime:  minMaxTime,
		MaxMaxTime:  maxMaxTime,
		CritPathLen: maxMaxTime,
	}
}

// backtraceCriticalPath marks every node on a longest Output-ending chain:
// starting from Output nodes whose MaxTiming equals maxMaxTime, it walks
// predecessors whose MaxTiming is within one tick of the current frontier.
func backtraceCriticalPath(cg *ComplexGraph, maxMaxTime int) {
	if maxMaxTime < 0 {
		return
	}

	var frontier []pixel.Index
	for _, id := range cg.SortedIDs() {
		n := cg.Nodes[id]
		if n.Purpose == Output && n.MaxTiming == maxMaxTime {
			frontier = append(frontier, id)
		}
	}

	visited := make(map[pixel.Index]bool)
	for len(frontier) > 0 {
		seenThisRound := make(map[pixel.Index]bool)
		var next []pixel.Index

		for _, id := range frontier {
			if visited[id] {
				continue
			}
			visited[id] = true
			n := cg.Nodes[id]
			n.OnCritPath = true

			for _, fid := range n.From {
				from := cg.Nodes[fid]
				if from.MaxTiming >= n.MaxTiming-1 && !seenThisRound[fid] {
					seenThisRound[fid] = true
					next = append(next, fid)
				}
			}
		}

		frontier = next
	}
}
