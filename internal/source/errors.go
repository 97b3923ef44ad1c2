package source

import "errors"

var (
	// ErrNotFound means the transcript or document could not be obtained.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a video URL or document id is malformed.
	ErrInvalidInput = errors.New("invalid input")
)
