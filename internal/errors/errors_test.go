//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrPermission, ErrScaffold)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "module name is empty",
		Location: "app/Modules",
		Field:    "ModuleName",
		Context:  map[string]string{"Base": "app/Modules", "Argument": "''"},
		Hint:     "Pass a module name, e.g. ci4mod make Blog",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: app/Modules")
	assert.Contains(t, output, "Field: ModuleName")
	assert.Contains(t, output, "Base: app/Modules")
	assert.Contains(t, output, "module name is empty")
	assert.Contains(t, output, "Hint: Pass a module name")
	assert.Less(t, strings.Index(output, "Argument:"), strings.Index(output, "Base:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("bad", "year", "use a positive year"), ErrValidation},
		{"not found", NewNotFoundError("no template", "routes", ""), ErrNotFound},
		{"permission", NewPermissionError("read-only", "/srv", ""), ErrPermission},
		{"wrap", Wrap(ErrScaffold, "2 operations failed"), ErrScaffold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "bad name"), ExitValidationError},
		{"permission error", ErrPermission, ExitPermissionDenied},
		{"fs permission error", fmt.Errorf("mkdir: %w", fs.ErrPermission), ExitPermissionDenied},
		{"not found error", ErrNotFound, ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("boom"), ExitNotFound), ExitNotFound},
		{"unknown error returns general error", errors.New("unknown error"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", NewExitError(errors.New("boom"), ExitGeneralError).Error())
	assert.Equal(t, "Validation Error", (&ExitError{Code: ExitValidationError}).Error())
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
