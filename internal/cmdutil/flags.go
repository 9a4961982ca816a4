// Package cmdutil provides shared command utilities: flag groups, outcome
// reporting and exit code mapping.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// ScaffoldFlags holds the flags of commands that materialize a module.
type ScaffoldFlags struct {
	BasePath     string
	Namespace    string
	SkipExisting bool
	Strict       bool
	Year         int
	DryRun       bool
	Output       string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.BasePath, "base", "b", "",
		"Directory that contains all modules (default: from config, then app/Modules)")
	cmd.Flags().StringVar(&f.Namespace, "namespace", "",
		`PHP namespace root matching --base (default: from config, then App\Modules)`)
	cmd.Flags().BoolVar(&f.SkipExisting, "skip-existing", false,
		"Keep files that already exist instead of overwriting them")
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Reject module names outside [A-Za-z0-9_]")
	cmd.Flags().IntVar(&f.Year, "year", 0,
		"Year printed in the generated view (default: current year)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Report what would be created without touching the filesystem")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "text",
		"Output format: text, yaml, json")
}

// StringIfChanged returns a pointer to value when the named flag was set
// on the command line, and nil otherwise.
func StringIfChanged(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// BoolIfChanged is StringIfChanged for boolean flags.
func BoolIfChanged(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
