package export

import (
	"errors"
	"fmt"
)

// ErrExportFailure is matched by every failure to write an export.
var ErrExportFailure = errors.New("export: write failed")

// Error wraps an export failure with the destination path.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *Error) Is(target error) bool {
	return target == ErrExportFailure
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(path string, err error) error {
	return &Error{Path: path, Err: err}
}
