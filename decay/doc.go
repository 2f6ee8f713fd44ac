// Package decay provides distance-decay kernels that model demand dropoff
// as travel cost increases.
//
// The decay package provides:
//
//   - Four named kernels (uniform, raised_cosine, gaussian, parabolic) with a
//     string resolver for configuration-driven model construction.
//   - Bind for closing an arbitrary user kernel over a parameter mapping.
//   - NewPiecewise for banded (multi-step) catchments built from concentric
//     radii with per-band weights.
//
// Every constructor returns a bound Func: a deterministic, elementwise
// distance → weight transform with weight(0) = 1 (maximal) and non-negative
// output everywhere. Kernels are resolved once at model construction and
// reused for every scoring call.
//
// See the gravity package for how these kernels drive accessibility models.
package decay
