package highlight

import (
	"errors"

	"github.com/nguyentantai21042004/highlight-flow/internal/lexrank"
)

var (
	// ErrEmptyInput is reported as a warning when the transcript holds no text.
	ErrEmptyInput = errors.New("transcript has no text")

	// ErrInvalidSentenceCount rejects a requested count below one.
	ErrInvalidSentenceCount = lexrank.ErrInvalidSentenceCount

	// ErrConvergenceNotReached is reported as a warning when centrality
	// scores come from the last capped iteration.
	ErrConvergenceNotReached = lexrank.ErrConvergenceNotReached
)

// IsValidation reports whether err was caused by the request itself.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidSentenceCount) || errors.Is(err, errInvalidTimeField)
}
