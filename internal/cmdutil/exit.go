package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/scaffold"
)

// OutcomeExitError maps a failed outcome to an *ExitError. It returns nil
// when nothing failed. The code is ExitPermissionDenied when every failure
// is a permission error and ExitGeneralError otherwise. The error is marked
// as printed because the report already lists every failure.
func OutcomeExitError(outcome *scaffold.Outcome) error {
	if !outcome.Failed() {
		return nil
	}

	code := oerrors.ExitPermissionDenied
	for _, err := range outcome.Errors() {
		if oerrors.ExitCodeFromError(err) != oerrors.ExitPermissionDenied {
			code = oerrors.ExitGeneralError
			break
		}
	}

	summary := oerrors.Wrap(oerrors.ErrScaffold, fmt.Sprintf("%d operation(s) failed", len(outcome.Errors())))
	return &oerrors.ExitError{Code: code, Err: errors.Join(summary, outcome.Err()), Printed: true}
}
