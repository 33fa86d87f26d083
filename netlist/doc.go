// Package netlist implements the blueprint compiler's core: it turns a
// pixel.Lattice into a SimpleGraph via a union-find connected-components
// pass with bridging rules (cross, tunnel, mesh, bus, wifi), then builds a
// ComplexGraph on demand for compression, purpose classification, timing
// analysis, structural lint and GraphViz emission.
//
// What:
//
//   - Compile(bp) runs the full connected-components pass and returns a
//     SimpleGraph plus any non-fatal diagnostics (e.g. unmatched tunnels).
//   - ComplexGraph materializes entities as an arena of Nodes with index-based
//     from/to adjacency (no pointers, no owning cycles), built fresh from a
//     SimpleGraph for each analysis and released when that analysis returns.
//   - Compress removes pass-through trace nodes.
//   - ComputeTimings propagates earliest/latest arrival ticks from every
//     Input node and backtraces the critical path.
//   - Lint checks minimum fan-in/fan-out per kind and unconnected traces.
//   - BuildGraphViz renders a ComplexGraph as `digraph { ... }` lines.
//
// Why: this is the hard part of the blueprint tool — a multi-pass
// connected-components problem with non-local bridging rules, layered under
// a signal-flow graph and graph algorithms (compression, timing, critical
// path) that must tolerate cycles.
//
// Concurrency: a compilation is synchronous, single-threaded and owns its
// own DisjointSet/SimpleGraph; a ComplexGraph's node flags are mutated
// in-place during timing and must not be shared across concurrent runs.
// Independent compilations over independent blueprints may run in parallel.
//
// Errors: ErrInvalidGeometry (from pixel.NewLattice) is the only fatal
// failure; everything else — unmatched tunnels, cycles, lint findings — is
// returned as data (Diagnostic values), never as an error.
package netlist
