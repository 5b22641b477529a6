package xerrors

import (
	"errors"
)

type isSourceError interface {
	isSourceError()
}

// IsSource reports whether err was produced by the connector itself,
// in opposite to errors from user callbacks or the broker client.
func IsSource(err error) bool {
	var e isSourceError

	return errors.As(err, &e)
}

type sourceError struct {
	err error
}

func (e *sourceError) isSourceError() {}

func (e *sourceError) Error() string {
	return e.err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.err
}

// Wrap makes internal connector error
func Wrap(err error) error {
	return &sourceError{err: err}
}
