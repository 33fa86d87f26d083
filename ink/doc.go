// Package ink maps the fixed RGBA palette of a blueprint's Logic layer onto
// a closed set of InkKind values and exposes the predicates the rest of the
// compiler needs to reason about them (active/trace/bus/wifi/latch, and the
// 12-bit category used to decide whether two kinds belong to the same
// conduction family).
//
// The mapping is pure, total and side-effect free: every RGBA quadruple maps
// to exactly one InkKind, with any unrecognized color (and, deliberately,
// Annotation and Filler) collapsing to Empty.
package ink
