package decay

import (
	"fmt"
	"math"
)

// NewPiecewise builds a banded step kernel over concentric catchment bands.
//
// Description:
//
//	Band k covers distances in (radius_{k−1}, radius_k] with radius_0 = 0
//	(distance 0 falls into the first band). Distances beyond the last
//	radius receive weight 0. This is the kernel behind multi-step floating
//	catchment models (3SFCA/MSFCA): e.g. full weight within the first
//	radius, partial weight between the first and second, and so on.
//
// Validation (all at construction, none per call):
//   - ErrNoBands — empty band list.
//   - ErrBandOrder — a radius is non-positive, NaN, infinite, or not
//     strictly greater than the previous band's radius.
//   - ErrBandWeight — a weight is negative, NaN or infinite.
//
// Weights need not be decreasing; only non-negativity is required.
//
// Complexity: O(len(bands)) per evaluation (band lists are short).
func NewPiecewise(bands []Band) (Func, error) {
	if len(bands) == 0 {
		return nil, ErrNoBands
	}

	prev := 0.0
	for k, b := range bands {
		if math.IsNaN(b.Radius) || math.IsInf(b.Radius, 0) || b.Radius <= prev {
			return nil, fmt.Errorf("band %d radius=%v after %v: %w", k, b.Radius, prev, ErrBandOrder)
		}
		if math.IsNaN(b.Weight) || math.IsInf(b.Weight, 0) || b.Weight < 0 {
			return nil, fmt.Errorf("band %d weight=%v: %w", k, b.Weight, ErrBandWeight)
		}
		prev = b.Radius
	}

	// Copy so later caller mutations cannot change bound behavior.
	bound := make([]Band, len(bands))
	copy(bound, bands)

	return func(distance float64) float64 {
		for _, b := range bound {
			// NaN compares false on every band and falls through to 0.
			if distance <= b.Radius {
				return b.Weight
			}
		}

		return 0.0
	}, nil
}
