package main

import (
	"errors"
	"fmt"
	"io"

	"vttext/internal/transcript"
)

// inputNotFoundError keeps the path exactly as the user typed it.
type inputNotFoundError struct {
	path string
	err  error
}

func (e *inputNotFoundError) Error() string { return e.err.Error() }

func (e *inputNotFoundError) Unwrap() error { return e.err }

func wrapConvertError(input string, err error) error {
	if errors.Is(err, transcript.ErrInputNotFound) {
		return &inputNotFoundError{path: input, err: err}
	}
	return err
}

func reportError(w io.Writer, err error) {
	var notFound *inputNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(w, "Error: File not found: %s\n", notFound.path)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
