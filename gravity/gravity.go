package gravity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tetraptych/aceso/decay"
)

// coLocationWeight caps the Huff interaction weight 1/d at zero distance.
const coLocationWeight = 1e8

// NewModel builds a gravity model of spatial accessibility around a bound
// decay kernel. A nil opts selects DefaultOptions.
//
// Different kernels yield the classic named models: uniform → 2SFCA,
// piecewise bands → 3SFCA/MSFCA, gaussian → KD2SFCA. Huff normalization and
// the suboptimality exponent (see Options) extend the family further.
//
// Errors:
//   - ErrNilDecay — fn is nil.
//   - ErrBadOption — SuboptimalityExponent is not positive and finite.
func NewModel(fn decay.Func, opts *Options) (*Model, error) {
	if fn == nil {
		return nil, ErrNilDecay
	}

	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if e := cfg.SuboptimalityExponent; math.IsNaN(e) || math.IsInf(e, 0) || e <= 0 {
		return nil, fmt.Errorf("suboptimality exponent %v: %w", cfg.SuboptimalityExponent, ErrBadOption)
	}

	return &Model{fn: fn, opts: cfg}, nil
}

// AccessibilityScores computes one accessibility score per demand location.
//
// Description:
//
//	distances is the (n_demand × n_supply) travel-cost matrix: entry (i,j)
//	is the impedance between demand location i and supply location j.
//	demand and supply are optional weight vectors (population, capacity);
//	nil selects all-ones of the matching length.
//
// Algorithm (the canonical two-pass 2SFCA/gravity aggregation):
//  1. W_ij = decay(d_ij); under Huff normalization, W_ij ·= P_ij where
//     P_ij = (1/d_ij) / Σ_j (1/d_ij) with zero distances capped.
//  2. Step A — demandPotential_j = Σ_i demand_i · W_ij, then
//     ratio_j = supply_j / demandPotential_j. A zero potential yields a
//     zero ratio rather than a division error: unreached supply simply
//     contributes no access.
//  3. Step B — score_i = Σ_j ratio_j · decay(d_ij)^e (× P_ij under Huff),
//     where e is the suboptimality exponent.
//
// The result is a fresh slice of length n_demand, row-aligned with
// distances, always finite and non-negative. Inputs are never mutated.
//
// Degenerate-but-valid inputs are not errors: an all-zero supply or demand
// vector produces all-zero scores, and +Inf distances mean "unreachable"
// (their decay weight is zero for every built-in kernel).
//
// Complexity: O(n_demand · n_supply) time and memory.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix — missing or degenerate matrix.
//   - ErrBadDistance — a negative or NaN distance entry.
//   - ErrShapeMismatch — a weight vector of the wrong length (wrapped with
//     the offending side, "demand" or "supply").
//   - ErrBadWeight — a negative, NaN or infinite weight entry.
func (m *Model) AccessibilityScores(distances mat.Matrix, demand, supply []float64) ([]float64, error) {
	if distances == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := distances.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}
	if err := validateDistances(distances, rows, cols); err != nil {
		return nil, err
	}

	demand, err := weightVector("demand", demand, rows)
	if err != nil {
		return nil, err
	}
	supply, err = weightVector("supply", supply, cols)
	if err != nil {
		return nil, err
	}

	// Decay weights, applied elementwise once and reused by both passes.
	// NaN from a misbehaving custom kernel degrades to zero weight instead
	// of poisoning the aggregation.
	weights := mat.NewDense(rows, cols, nil)
	weights.Apply(func(_, _ int, d float64) float64 {
		w := m.fn(d)
		if math.IsNaN(w) {
			return 0.0
		}

		return w
	}, distances)

	var probs *mat.Dense
	if m.opts.HuffNormalization {
		probs = interactionProbabilities(distances, rows, cols)
	}

	// Step A: decay-weighted demand potential at each supply location.
	stepA := weights
	if probs != nil {
		stepA = mat.NewDense(rows, cols, nil)
		stepA.MulElem(weights, probs)
	}
	potentials := mat.NewVecDense(cols, nil)
	potentials.MulVec(stepA.T(), mat.NewVecDense(rows, demand))

	// Provider-to-population ratios; zero potential means zero contribution.
	ratios := make([]float64, cols)
	for j := range ratios {
		if p := potentials.AtVec(j); p > 0 {
			ratios[j] = supply[j] / p
		}
	}

	// Step B: gather ratios back onto demand locations.
	stepB := weights
	if e := m.opts.SuboptimalityExponent; e != 1.0 {
		stepB = mat.NewDense(rows, cols, nil)
		stepB.Apply(func(_, _ int, w float64) float64 {
			return math.Pow(w, e)
		}, weights)
	}
	if probs != nil {
		gathered := mat.NewDense(rows, cols, nil)
		gathered.MulElem(stepB, probs)
		stepB = gathered
	}

	scores := mat.NewVecDense(rows, nil)
	scores.MulVec(stepB, mat.NewVecDense(cols, ratios))

	out := make([]float64, rows)
	copy(out, scores.RawVector().Data)

	return out, nil
}

// validateDistances rejects negative and NaN impedances. +Inf passes:
// it encodes an unreachable pair and decays to zero weight.
func validateDistances(distances mat.Matrix, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if d := distances.At(i, j); math.IsNaN(d) || d < 0 {
				return fmt.Errorf("entry (%d,%d)=%v: %w", i, j, d, ErrBadDistance)
			}
		}
	}

	return nil
}

// weightVector validates a demand/supply vector against the expected
// dimension and returns a defensive copy, or all-ones when v is nil.
func weightVector(side string, v []float64, want int) ([]float64, error) {
	out := make([]float64, want)
	if v == nil {
		for i := range out {
			out[i] = 1.0
		}

		return out, nil
	}
	if len(v) != want {
		return nil, fmt.Errorf("%s length %d, want %d: %w", side, len(v), want, ErrShapeMismatch)
	}
	for i, w := range v {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%s[%d]=%v: %w", side, i, w, ErrBadWeight)
		}
		out[i] = w
	}

	return out, nil
}

// interactionProbabilities builds the Huff-style selection-probability
// matrix: each row holds 1/d_ij normalized to sum to one, with zero
// distances capped at coLocationWeight. A row with no reachable supply
// (all +Inf distances) stays zero instead of dividing by zero.
func interactionProbabilities(distances mat.Matrix, rows, cols int) *mat.Dense {
	probs := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		total := 0.0
		for j := 0; j < cols; j++ {
			w := 1.0 / distances.At(i, j)
			if math.IsInf(w, 1) {
				w = coLocationWeight
			}
			row[j] = w
			total += w
		}
		if total == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			probs.Set(i, j, row[j]/total)
		}
	}

	return probs
}
