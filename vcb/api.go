package vcb

import (
	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/netlist"
)

// Compile runs the full connected-components pass over bp and returns the
// resulting SimpleGraph together with any non-fatal diagnostics gathered
// along the way (unmatched tunnels). The only error it can return is
// pixel.ErrInvalidGeometry.
func Compile(bp blueprint.Blueprint) (*netlist.SimpleGraph, []netlist.Diagnostic, error) {
	return netlist.Compile(bp)
}

// CircuitReport bundles the derived artifacts a caller typically wants out
// of a compiled netlist in one pass: the compressed graph, its timing
// statistics, and lint findings, alongside the compile-time diagnostics.
type CircuitReport struct {
	Compiled    *netlist.SimpleGraph
	Compressed  *netlist.SimpleGraph
	Timings     netlist.TimingStats
	Diagnostics []netlist.Diagnostic
}

// AnalyzeCircuit compiles bp, compresses the result, computes timings, and
// lints the compressed graph, returning everything in one CircuitReport.
// Compile-time diagnostics and lint findings are concatenated in that
// order. lintOpts are forwarded to netlist.Lint unchanged.
func AnalyzeCircuit(bp blueprint.Blueprint, lintOpts ...netlist.LintOption) (*CircuitReport, error) {
	sg, diags, err := netlist.Compile(bp)
	if err != nil {
		return nil, err
	}

	width := bp.Width()
	compressed := netlist.Compress(sg, width)

	cg := netlist.BuildComplexGraph(compressed, width)
	cg.ClassifyPurpose()
	stats, cycles := netlist.ComputeTimings(cg)

	findings := netlist.Lint(cg, lintOpts...)

	all := append([]netlist.Diagnostic{}, diags...)
	all = append(all, cycles...)
	all = append(all, findings...)

	report := &CircuitReport{
		Compiled:    sg,
		Compressed:  compressed,
		Timings:     stats,
		Diagnostics: all,
	}

	return report, nil
}

// BuildGraphViz renders sg (width, height taken from bp) as GraphViz dot
// source per settings, returning the rendered lines alongside the timing
// statistics computed while doing so.
func BuildGraphViz(bp blueprint.Blueprint, sg *netlist.SimpleGraph, settings netlist.GraphSettings) netlist.GraphResults {
	return netlist.BuildGraphViz(sg, bp.Width(), bp.Height(), settings)
}
