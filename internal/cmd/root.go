// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ci4mod/cli/internal/cmdutil"
	"github.com/ci4mod/cli/internal/config"
	"github.com/ci4mod/cli/internal/output"
	"github.com/ci4mod/cli/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the ci4mod CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "ci4mod",
		Short: "CodeIgniter 4 module scaffolding",
		Long: `ci4mod generates HMVC modules for CodeIgniter 4 applications.

A module is a directory under the modules base path holding routes, a
controller, a model, an entity, a service and a view, all namespaced
under the module name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: CI4MOD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewMakeCmd(cfg))
	rootCmd.AddCommand(NewTemplateCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads the config file, resolves the global values and
// sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *config.GlobalConfig) error {
	fv := config.FlagValues{
		Config:     cmdutil.StringIfChanged(c, "config", flags.config),
		Timestamps: cmdutil.BoolIfChanged(c, "timestamps", flags.timestamps),
	}

	configPath, configValue, err := config.ResolveConfigPath(fv.Config)
	if err != nil {
		return err
	}

	// A broken config file is reported but does not stop commands such as
	// `config init`.
	file, loadErr := config.NewLoader().Load(configPath)
	if loadErr != nil {
		file = &config.Config{}
	}

	resolved, err := config.ResolveWith(fv, configPath, configValue, file)
	if err != nil {
		return err
	}

	cfg.File = file
	cfg.ConfigPath = configPath
	cfg.ConfigValue = configValue
	cfg.Resolved = resolved
	cfg.Timestamps = fv.Timestamps
	cfg.Verbose = flags.verbose

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps),
	})

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath, "error", loadErr)
	}

	info := version.Get()
	output.Debug("ci4mod started", "version", info.Version)
	config.LogResolvedValues(resolved.Values)

	return nil
}
