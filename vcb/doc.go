// Package vcb is the top-level façade over ink, pixel and netlist: the
// handful of entry points a caller actually needs to turn a blueprint into
// a netlist, analyze it, and render it.
package vcb
