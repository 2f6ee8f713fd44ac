// Package decay: core types shared by the kernel constructors and resolver.
package decay

// Params maps kernel parameter names to numeric values, e.g.
// Params{"radius": 30}. Radius-like parameters also accept the legacy
// key "scale".
type Params map[string]float64

// Func is a bound decay kernel: a pure, deterministic map from a
// non-negative distance to a weight in [0, 1]. Bound kernels hold their
// parameters in a closure and are safe for concurrent use.
type Func func(distance float64) float64

// RawFunc is an unbound user kernel. Bind closes it over a Params mapping
// to produce a Func usable by the gravity models.
type RawFunc func(distance float64, params Params) float64

// Band describes one concentric catchment band for NewPiecewise:
// distances in (previous Radius, Radius] receive Weight.
//
// Radii across a band list must be positive, finite and strictly
// increasing; weights must be non-negative (they need not decrease).
type Band struct {
	Radius float64
	Weight float64
}

// Recognized kernel names for Resolve.
const (
	NameUniform      = "uniform"
	NameRaisedCosine = "raised_cosine"
	NameGaussian     = "gaussian"
	NameParabolic    = "parabolic"
	// NameEpanechnikov is an alias of NameParabolic: the parabolic kernel is
	// the Epanechnikov kernel.
	NameEpanechnikov = "epanechnikov"
)
