package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ci4mod/cli/internal/config"
	"github.com/ci4mod/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show ci4mod version, commit, build date and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
