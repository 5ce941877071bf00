package sim

import "errors"

// Error kinds reported by the engine. All are detected before or at the
// start of a run; none are retried automatically. Callers match them
// with errors.Is.
var (
	// ErrInvalidConfiguration covers non-positive lead time or order
	// quantity, shape parameters <= 1, zero-length distribution tables,
	// and a lead time exceeding the batched-mode truck buffer bound.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateSeed is returned when a generator would be seeded
	// with state 0, which the xorshift recurrence maps to 0 forever.
	ErrDegenerateSeed = errors.New("degenerate seed")

	// ErrDivisionUndefined is returned when a requested fill-rate ratio
	// has a zero denominator. Never silently propagated as NaN.
	ErrDivisionUndefined = errors.New("division undefined")
)
