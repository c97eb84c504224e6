package domain

import "errors"

var (
	// ErrInvalidSource is returned when a Source is neither text nor a file.
	ErrInvalidSource = errors.New("source must be literal text or a file path")

	ErrInvalidWindow    = errors.New("window must be at least 1")
	ErrInvalidChunkSize = errors.New("chunk size must be at least 1")
)
