package scaffold

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is reported when a module directory path is occupied by
// a regular file.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// DirectoryCreationError reports a failure to create one module directory.
type DirectoryCreationError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("creating directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// FileWriteError reports a failure to render or write one template.
type FileWriteError struct {
	Key  string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileWriteError) Error() string {
	return fmt.Sprintf("writing %s (%s): %v", e.Path, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileWriteError) Unwrap() error {
	return e.Err
}
