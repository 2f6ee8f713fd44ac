package decay

import "errors"

var (
	// ErrUnknownFunction indicates Resolve was given a name outside the
	// recognized kernel set.
	ErrUnknownFunction = errors.New("decay: unknown decay function name")
	// ErrMissingParameter indicates a required kernel parameter is absent
	// from the Params mapping.
	ErrMissingParameter = errors.New("decay: missing required parameter")
	// ErrBadParameter indicates a kernel parameter is non-positive, NaN or infinite.
	ErrBadParameter = errors.New("decay: parameter must be positive and finite")
	// ErrNilFunction indicates Bind was given a nil kernel.
	ErrNilFunction = errors.New("decay: nil decay function")
	// ErrNoBands indicates NewPiecewise was given an empty band list.
	ErrNoBands = errors.New("decay: at least one band is required")
	// ErrBandOrder indicates band radii are not positive, finite and strictly increasing.
	ErrBandOrder = errors.New("decay: band radii must be positive, finite and strictly increasing")
	// ErrBandWeight indicates a band weight is negative, NaN or infinite.
	ErrBandWeight = errors.New("decay: band weights must be non-negative and finite")
)
