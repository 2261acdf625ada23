package editor

import "errors"

var (
	// ErrNoSession is returned when the caller has no open editing session.
	ErrNoSession = errors.New("no editing session")

	// ErrNoPreview is returned when no export has been committed yet.
	ErrNoPreview = errors.New("no preview available")

	// ErrSuperseded is returned to an export that finished after a newer one
	// had already started. Its result is discarded.
	ErrSuperseded = errors.New("export superseded by a newer request")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
