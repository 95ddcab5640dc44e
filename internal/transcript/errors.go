package transcript

import (
	"errors"
	"fmt"
)

// ErrInputNotFound reports that the input path does not resolve to a readable file.
var ErrInputNotFound = errors.New("input file not found")

// ProcessingError wraps any other failure: decoding, reading, or writing.
type ProcessingError struct {
	Op   string
	Path string
	Err  error
}

func (e *ProcessingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func processingError(op, path string, err error) error {
	return &ProcessingError{Op: op, Path: path, Err: err}
}
