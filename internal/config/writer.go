package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/ci4mod/cli/internal/errors"
)

const configHeader = `# ci4mod configuration
#
# Precedence: command-line flag > environment variable > this file > default.
`

// WriteDefault writes DefaultConfig as YAML to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(expanded); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "config file already exists",
			Location: expanded,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}

	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return writeError("creating config directory", expanded, err)
	}

	if err := os.WriteFile(expanded, append([]byte(configHeader), body...), 0o644); err != nil {
		return writeError("writing config file", expanded, err)
	}

	return nil
}

func writeError(action, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(fmt.Sprintf("%s: %v", action, err), path,
			"Choose a writable location with --config or CI4MOD_CONFIG.")
	}
	return fmt.Errorf("%s: %w", action, err)
}
