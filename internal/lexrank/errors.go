package lexrank

import "errors"

var (
	// ErrInvalidSentenceCount is returned for a requested count below one.
	ErrInvalidSentenceCount = errors.New("sentence count must be positive")

	// ErrConvergenceNotReached marks scores taken from the last iteration
	// because the iteration cap was hit before the epsilon threshold.
	ErrConvergenceNotReached = errors.New("centrality iteration did not converge")
)
