// Package gravity: model configuration types.
package gravity

import "github.com/tetraptych/aceso/decay"

// Options configures a gravity Model beyond its decay kernel.
//
// Fields:
//   - HuffNormalization — multiply both aggregation passes by Huff-style
//     interaction probabilities, so that demand locations with many nearby
//     options exert less pressure on faraway supply. This is the
//     demand-competition adjustment of 3SFCA (Wan, Zou & Sternberg 2012)
//     and it curbs the demand over-estimation of plain 2SFCA.
//   - SuboptimalityExponent — exponent applied to the decay weight in the
//     gathering pass only (M2SFCA). Values above 1.0 penalize network
//     suboptimality: three patients each 2 miles from the sole clinic score
//     lower than three patients each 1 mile away, even though the
//     provider-to-population ratios match. Must be positive and finite;
//     1.0 (the default) recovers the plain gravity model.
type Options struct {
	HuffNormalization     bool
	SuboptimalityExponent float64
}

// DefaultOptions returns the plain gravity-model configuration:
// no Huff normalization, suboptimality exponent 1.0.
func DefaultOptions() Options {
	return Options{
		HuffNormalization:     false,
		SuboptimalityExponent: 1.0,
	}
}

// Model is an immutable accessibility-model configuration: a bound decay
// kernel plus Options. Construct once with NewModel (or NewTwoStepFCA /
// NewThreeStepFCA) and invoke AccessibilityScores many times; a Model holds
// no mutable state and is safe for concurrent use.
type Model struct {
	fn   decay.Func
	opts Options
}
