package scaffold

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a scaffolding step failed.
type ErrorKind string

const (
	// KindToolFailure means the build tool could not be started or exited non-zero.
	KindToolFailure ErrorKind = "tool failure"
	// KindIO means a local file or directory could not be created or written.
	KindIO ErrorKind = "io"
)

// InitError wraps the cause of a failed step with the step name and kind.
type InitError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: file or directory the step was working on
	Err  error
}

func (e *InitError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an InitError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie.Kind == kind
	}
	return false
}

// FailedOp returns the step name of an InitError, or "" for any other error.
func FailedOp(err error) string {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie.Op
	}
	return ""
}

func toolFailure(op, path string, err error) error {
	return &InitError{Op: op, Kind: KindToolFailure, Path: path, Err: err}
}

func ioFailure(op, path string, err error) error {
	return &InitError{Op: op, Kind: KindIO, Path: path, Err: err}
}
