package config

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that overrides the config file path.
const EnvConfig = "CI4MOD_CONFIG"

// Paths contains standard filesystem paths for ci4mod.
type Paths struct {
	// ConfigFile is the path to the config file (~/.ci4mod/config.yaml).
	ConfigFile string

	// HomeDir is the ci4mod home directory (~/.ci4mod).
	HomeDir string
}

// DefaultPaths returns the default paths for ci4mod.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".ci4mod")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
