// Package stroke expands a flattened line path into a filled outline
// polygon: dashing followed by half-stroke offset generation with joins
// and caps.
//
// # Coordinate space
//
// Both dashing and the join/offset geometry operate in *user* space, not
// device space: every device-space vertex is mapped through the current
// transform's inverse before any length or offset is computed, and mapped
// back through the forward transform before being appended to the output
// polygon. This makes dash lengths and line widths behave correctly under
// non-uniform transforms (e.g. a stroke scaled differently in x than y
// keeps a constant user-space width rather than a constant device-space
// one).
//
// # Algorithm
//
// Each subpath is offset once walking forward and once walking backward,
// by ±width/2 perpendicular to the local tangent, with a join emitted at
// each interior vertex (miter falling back to bevel past the miter limit,
// or round). The two walks concatenate into a single closed polygon, fed
// back into the line buffer and rasterized with the nonzero fill rule.
// Caps (butt, square, circle) close open subpaths between the forward and
// backward walks instead of a join.
package stroke
