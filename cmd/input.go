package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// appFs is the filesystem task lists are read from. Tests swap in an
// afero.NewMemMapFs.
var appFs afero.Fs = afero.NewOsFs()

// Sentinel errors for task list input resolution.
var (
	// ErrTaskFileNotFound is returned when the task list file does not exist.
	ErrTaskFileNotFound = errors.New("could not open task list file")
	// ErrTaskFilePermission is returned when the task list file cannot be read due to permissions.
	ErrTaskFilePermission = errors.New("permission denied reading task list file")
)

// InputError wraps task list input errors with the offending path.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s '%s'", e.Err.Error(), e.Path)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// openTaskList resolves the task list source: the named file when path is
// non-empty and not "-", otherwise the standard input. The caller owns the
// returned ReadCloser.
func openTaskList(fs afero.Fs, path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, wrapInputError(path, err)
	}
	return f, nil
}

// wrapInputError converts OS-level errors to domain-specific errors.
func wrapInputError(path string, err error) error {
	if os.IsNotExist(err) {
		return &InputError{Path: path, Err: ErrTaskFileNotFound}
	}
	if os.IsPermission(err) {
		return &InputError{Path: path, Err: ErrTaskFilePermission}
	}
	return &InputError{Path: path, Err: err}
}
