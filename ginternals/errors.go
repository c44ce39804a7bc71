package ginternals

import "errors"

var (
	// ErrObjectNotFound is an error corresponding to a git object not
	// being found
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectCorrupted is an error corresponding to a git object that
	// cannot be read back from the odb
	ErrObjectCorrupted = errors.New("object corrupted")

	// ErrIndexCorrupted is an error thrown when the index file contains
	// unexpected data
	ErrIndexCorrupted = errors.New("index corrupted")

	// ErrIndexVersionNotSupported is an error thrown when the index file
	// uses a version this implementation cannot read
	ErrIndexVersionNotSupported = errors.New("index version not supported")
)
