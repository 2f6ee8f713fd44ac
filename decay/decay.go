package decay

import (
	"fmt"
	"math"
	"strings"
)

// NewUniform builds the uniform (binary) kernel:
//
//	weight = 1 for distance ≤ radius, 0 beyond.
//
// Pairs of points further than radius apart are deemed mutually
// inaccessible; points within contribute their full weight with no decay.
// Driving the gravity model with this kernel yields the standard 2SFCA
// method.
//
// Errors: ErrBadParameter if radius is not positive and finite.
func NewUniform(radius float64) (Func, error) {
	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}

	return func(distance float64) float64 {
		// NaN compares false, so NaN distances fall through to 0.
		if distance <= radius {
			return 1.0
		}

		return 0.0
	}, nil
}

// NewRaisedCosine builds a smooth cosine falloff from 1 at distance 0 to
// 0 at distance = radius, flat 0 beyond:
//
//	weight = (1 + cos(π·min(d, radius)/radius)) / 2
//
// Sample values (in multiples of radius): 0→1, 0.25→0.853553, 0.5→0.5,
// 0.75→0.146447, 1→0. Useful for fixed catchments without the hard-cutoff
// artifacts of the uniform kernel.
//
// Errors: ErrBadParameter if radius is not positive and finite.
func NewRaisedCosine(radius float64) (Func, error) {
	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}

	return func(distance float64) float64 {
		d := math.Min(math.Max(distance, 0), radius)

		return (1.0 + math.Cos(d/radius*math.Pi)) / 2.0
	}, nil
}

// NewGaussian builds the normal-distribution kernel:
//
//	weight = exp(−distance² / (2·sigma²))
//
// Sample values (in multiples of sigma): 0→1, 1→0.60647, 2→0.13531.
// The kernel never reaches exactly zero at finite distance; +Inf maps to 0.
//
// Errors: ErrBadParameter if sigma is not positive and finite.
func NewGaussian(sigma float64) (Func, error) {
	if err := checkPositive("sigma", sigma); err != nil {
		return nil, err
	}

	twoSigmaSq := 2.0 * sigma * sigma

	return func(distance float64) float64 {
		return math.Exp(-(distance * distance) / twoSigmaSq)
	}, nil
}

// NewParabolic builds the Epanechnikov (parabolic) kernel:
//
//	weight = max((radius² − distance²) / radius², 0)
//
// Sample values (in multiples of radius): 0→1, 0.25→0.9375, 0.5→0.75,
// 0.75→0.4375, 1→0.
//
// Errors: ErrBadParameter if radius is not positive and finite.
func NewParabolic(radius float64) (Func, error) {
	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}

	radiusSq := radius * radius

	return func(distance float64) float64 {
		return math.Max((radiusSq-distance*distance)/radiusSq, 0)
	}, nil
}

// Resolve returns the bound kernel for a recognized name and its Params.
//
// Recognized names: "uniform", "raised_cosine", "parabolic" (alias
// "epanechnikov") parameterized by "radius" (legacy alias "scale"), and
// "gaussian" parameterized by "sigma". Name matching is case-insensitive.
//
// Errors:
//   - ErrUnknownFunction — name outside the recognized set.
//   - ErrMissingParameter — the kernel's parameter key is absent.
//   - ErrBadParameter — the parameter is non-positive, NaN or infinite.
func Resolve(name string, params Params) (Func, error) {
	switch strings.ToLower(name) {
	case NameUniform:
		radius, err := requireParam(params, "radius", "scale")
		if err != nil {
			return nil, err
		}

		return NewUniform(radius)
	case NameRaisedCosine:
		radius, err := requireParam(params, "radius", "scale")
		if err != nil {
			return nil, err
		}

		return NewRaisedCosine(radius)
	case NameGaussian:
		sigma, err := requireParam(params, "sigma")
		if err != nil {
			return nil, err
		}

		return NewGaussian(sigma)
	case NameParabolic, NameEpanechnikov:
		radius, err := requireParam(params, "radius", "scale")
		if err != nil {
			return nil, err
		}

		return NewParabolic(radius)
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}
}

// Bind closes an arbitrary user kernel over a Params mapping, producing a
// bound Func. Parameter validation is the kernel's own responsibility; Bind
// only rejects a nil kernel.
//
// Errors: ErrNilFunction if fn is nil.
func Bind(fn RawFunc, params Params) (Func, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}

	return func(distance float64) float64 {
		return fn(distance, params)
	}, nil
}

// requireParam fetches the first present key among keys from params.
// The first key names the parameter in error messages.
func requireParam(params Params, keys ...string) (float64, error) {
	for _, key := range keys {
		if v, ok := params[key]; ok {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", keys[0], ErrMissingParameter)
}

// checkPositive enforces the shared positivity policy for scale parameters.
func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s=%v: %w", name, v, ErrBadParameter)
	}

	return nil
}
