package gravity

import (
	"fmt"

	"github.com/tetraptych/aceso/decay"
)

// NewTwoStepFCA builds the standard Two-Step Floating Catchment Area model:
// the gravity model driven by a uniform kernel bound to a single catchment
// radius. Pairs of points further than radius apart are mutually
// inaccessible; pairs within contribute full weight with no decay.
//
// Errors: decay.ErrBadParameter if radius is not positive and finite.
func NewTwoStepFCA(radius float64) (*Model, error) {
	fn, err := decay.NewUniform(radius)
	if err != nil {
		return nil, fmt.Errorf("two-step FCA: %w", err)
	}

	return NewModel(fn, nil)
}

// NewThreeStepFCA builds a banded multi-step floating catchment area model
// (3SFCA/MSFCA): the gravity model driven by a piecewise kernel over
// concentric catchment bands, e.g. full weight within the first radius,
// partial weight out to the second, lower weight out to the third.
//
// The banded kernel is applied identically in both aggregation passes, so
// the model is the single-pass formulation of "run the two-pass algorithm
// once per band, then sum". To also account for demand competition between
// nearby options, construct with NewModel and Options.HuffNormalization.
//
// Errors: decay.ErrNoBands, decay.ErrBandOrder or decay.ErrBandWeight on an
// invalid band configuration.
func NewThreeStepFCA(bands []decay.Band) (*Model, error) {
	fn, err := decay.NewPiecewise(bands)
	if err != nil {
		return nil, fmt.Errorf("three-step FCA: %w", err)
	}

	return NewModel(fn, nil)
}
