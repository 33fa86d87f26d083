// Package compiler (vcblab) turns a three-layer pixel blueprint into a
// logical netlist and analyzes it.
//
// 🚀 What is vcblab/compiler?
//
//	A small, dependency-light library that brings together:
//
//	  • Ink mapping: recognize a closed palette of colors as logic kinds
//	  • Pixel union-find: merge a grid into electrically-connected classes
//	  • Netlist extraction: entities, directed read/write signal edges
//	  • Graph analyses: compression, timing/critical-path, structural lint,
//	    GraphViz emission
//
// ✨ Why this shape?
//
//   - Deterministic  — recompiling the same blueprint yields a byte-identical graph
//   - Synchronous    — a compilation is a pure function of one Blueprint
//   - Iterative      — the timing DFS uses an explicit stack and union-find
//     Find is a plain loop, so large blueprints don't overflow the call stack
//
// Under the hood, everything is organized under five subpackages:
//
//	blueprint/ — the Blueprint interface the compiler reads & an in-memory Grid
//	ink/      — Color, InkKind, the palette mapping & role predicates
//	pixel/    — Lattice (the pixel grid) & DisjointSet
//	netlist/  — the compiler core: union-find pass, SimpleGraph, ComplexGraph,
//	            compression, timing, lint, GraphViz
//	vcb/      — thin public entry points over the above
//
// Quick ASCII example — a wire feeding an inverter feeding a trace:
//
//	Read ─▶ Not ─▶ Trace1
//
// compiles to a 3-entity SimpleGraph with two directed edges.
//
//	go get github.com/vcblab/compiler
package compiler
