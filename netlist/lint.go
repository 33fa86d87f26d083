package netlist

import (
	"fmt"

	"github.com/vcblab/compiler/ink"
)

// LintOption configures Lint's behavior.
type LintOption func(*lintOptions)

type lintOptions struct {
	checkTraces bool
	checkGates  bool
}

func resolveLintOptions(opts []LintOption) lintOptions {
	o := lintOptions{checkTraces: true, checkGates: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCheckTraces toggles the "nothing reads/writes this trace" warnings.
func WithCheckTraces(enabled bool) LintOption {
	return func(o *lintOptions) { o.checkTraces = enabled }
}

// WithCheckGates toggles whether multi-input gates (And/Or/Nor/Nand/Xor/
// Xnor) require 2 inputs (true) or just 1 (false).
func WithCheckGates(enabled bool) LintOption {
	return func(o *lintOptions) { o.checkGates = enabled }
}

// minFanInOut gives the minimum required fan-in/fan-out for a kind,
// applied after WithCheckGates resolves the gate-specific minimum.
func minFanInOut(k ink.Kind, gateMinIn int) (minIn, minOut int, checked bool) {
	switch k {
	case ink.Buffer, ink.Not:
		return 1, 1, true
	case ink.And, ink.Or, ink.Nor, ink.Nand, ink.Xor, ink.Xnor:
		return gateMinIn, 1, true
	case ink.LatchOn, ink.LatchOff, ink.Clock, ink.Timer, ink.Random:
		return 0, 1, true
	case ink.LED, ink.Break:
		return 1, 0, true
	case ink.Wifi0, ink.Wifi1, ink.Wifi2, ink.Wifi3:
		return 1, 1, true
	default:
		return 0, 0, false
	}
}

// Lint runs structural checks over cg: minimum fan-in/fan-out per kind,
// and (if enabled) trace nodes that nothing reads from or writes to. Each
// finding carries the (x, y) of the node's canonical pixel.
func Lint(cg *ComplexGraph, opts ...LintOption) []Diagnostic {
	o := resolveLintOptions(opts)
	gateMinIn := 1
	if o.checkGates {
		gateMinIn = 2
	}

	var diags []Diagnostic
	for _, id := range cg.SortedIDs() {
		n := cg.Nodes[id]
		x, y := int(id)%cg.Width, int(id)/cg.Width

		if o.checkTraces && ink.IsTrace(n.Kind) {
			if len(n.To) == 0 {
				diags = append(diags, Diagnostic{Kind: LintFinding, X: x, Y: y, Message: "nothing reads from this trace"})
			}
			if len(n.From) == 0 {
				diags = append(diags, Diagnostic{Kind: LintFinding, X: x, Y: y, Message: "nothing writes to this trace"})
			}
		}

		minIn, minOut, checked := minFanInOut(n.Kind, gateMinIn)
		if !checked {
			continue
		}
		if len(n.From) < minIn {
			diags = append(diags, Diagnostic{
				Kind: LintFinding, X: x, Y: y,
				Message: fmt.Sprintf("%s has less than %d inputs", ink.Desc(n.Kind), minIn),
			})
		}
		if len(n.To) < minOut {
			diags = append(diags, Diagnostic{
				Kind: LintFinding, X: x, Y: y,
				Message: fmt.Sprintf("%s has less than %d outputs", ink.Desc(n.Kind), minOut),
			})
		}
	}

	return diags
}
