package netlist

import "fmt"

// DiagnosticKind classifies a non-fatal compiler finding.
type DiagnosticKind int

const (
	// UnmatchedTunnel reports a tunnel endpoint with no matching far side.
	UnmatchedTunnel DiagnosticKind = iota
	// CycleDetected reports a node encountered while already on the
	// timing-propagation stack.
	CycleDetected
	// LintFinding reports a structural lint violation (fan-in/out, unread
	// or unwritten trace).
	LintFinding
)

// Diagnostic is a single non-fatal compiler finding, always carrying the
// (x, y) of the pixel it concerns. Diagnostics are data, never errors: a
// compilation that produces any number of them still yields a valid
// SimpleGraph.
type Diagnostic struct {
	Kind    DiagnosticKind
	X, Y    int
	Message string
}

// String renders the diagnostic as "<x>, <y>: <message>", the exact format
// an AnalysisReport line takes.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d, %d: %s", d.X, d.Y, d.Message)
}

// AnalysisReport renders a slice of Diagnostics as their string form, one
// per line, in the order given.
func AnalysisReport(diags []Diagnostic) []string {
	report := make([]string, len(diags))
	for i, d := range diags {
		report[i] = d.String()
	}

	return report
}
