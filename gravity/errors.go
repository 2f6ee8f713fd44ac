package gravity

import "errors"

var (
	// ErrNilDecay indicates a model was constructed without a decay kernel.
	ErrNilDecay = errors.New("gravity: decay function must not be nil")
	// ErrBadOption indicates an invalid model option
	// (e.g. a non-positive suboptimality exponent).
	ErrBadOption = errors.New("gravity: invalid model option")
	// ErrNilMatrix indicates a nil distance matrix was passed.
	ErrNilMatrix = errors.New("gravity: distance matrix is nil")
	// ErrEmptyMatrix indicates the distance matrix has zero rows or columns.
	ErrEmptyMatrix = errors.New("gravity: distance matrix must have at least one row and one column")
	// ErrBadDistance indicates a negative or NaN distance entry.
	// +Inf is legal and means "unreachable".
	ErrBadDistance = errors.New("gravity: distances must be non-negative and not NaN")
	// ErrShapeMismatch indicates a demand or supply vector whose length does
	// not match the corresponding distance-matrix dimension.
	ErrShapeMismatch = errors.New("gravity: weight vector length does not match distance matrix")
	// ErrBadWeight indicates a negative, NaN or infinite demand/supply weight.
	ErrBadWeight = errors.New("gravity: demand and supply weights must be non-negative and finite")
)
