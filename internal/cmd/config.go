package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ci4mod/cli/internal/config"
	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the ci4mod CLI.`,
	}

	c.AddCommand(newConfigInitCmd(cfg))
	c.AddCommand(newConfigShowCmd(cfg))

	return c
}

func newConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new ci4mod configuration file with default values.

The configuration file is created at ~/.ci4mod/config.yaml by default.
Use --config or CI4MOD_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := config.WriteDefault(cfg.ConfigPath, force); err != nil {
				return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+cfg.ConfigPath))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func newConfigShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show every configuration value and where it came from.

Precedence: flag > environment > config file > default.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tbl := output.NewTable("KEY", "VALUE", "SOURCE")
			for _, v := range cfg.Resolved.Values {
				tbl.Row(v.Key, fmt.Sprint(v.Value), string(v.Source))
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
