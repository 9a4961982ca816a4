package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".ci4mod"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".ci4mod", "config.yaml"), paths.ConfigFile)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/etc/ci4mod.yaml", "/etc/ci4mod.yaml"},
		{"relative/config.yaml", "relative/config.yaml"},
		{"~", home},
		{"~/.ci4mod/config.yaml", filepath.Join(home, ".ci4mod", "config.yaml")},
		{"~other/config.yaml", "~other/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
