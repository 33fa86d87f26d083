// Package pixel provides the pixel lattice and the disjoint-set (union-find)
// structure the compiler's connected-components pass runs over.
//
// What:
//
//   - Lattice wraps a blueprint's Logic layer as a flat, row-major slice of
//     ink.Kind, addressed by Index = y*Width + x.
//   - DisjointSet is a classic union-find over [0, Width*Height) with path
//     compression and an unbalanced, leftmost-wins Union: Union(a, b) makes
//     Find(a) the surviving root. This bias is load-bearing — later compiler
//     passes key classes by their canonical root, so
//     switching to union-by-rank would change which pixel represents a
//     component and, with it, the identity of every downstream entity/edge.
//
// Complexity: Find is amortized near O(1) with path compression; Union is
// O(1) plus two Find calls. Both are implemented iteratively (no recursion)
// so that large blueprints cannot overflow the call stack.
package pixel
