package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (module name, flag value, config value).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates the filesystem refused an operation.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, config file or path was not found.
	ErrNotFound = errors.New("not found")

	// ErrScaffold indicates one or more scaffold operations failed.
	ErrScaffold = errors.New("scaffold failed")
)
