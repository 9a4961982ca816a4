package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ci4mod/cli/internal/cmdutil"
	"github.com/ci4mod/cli/internal/config"
	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/naming"
	"github.com/ci4mod/cli/internal/output"
	"github.com/ci4mod/cli/internal/scaffold"
)

// NewMakeCmd creates the make command.
func NewMakeCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:   "make <ModuleName>",
		Short: "Scaffold a new module",
		Long: `Scaffold a CodeIgniter 4 HMVC module.

Creates <base>/<Name>/ with the Config, Controllers, Models, Entities,
Database/Migrations, Services and Views directories, then renders the
routes, controller, model, entity, service and view files into them.

The first letter of the name is upper-cased for class names, namespaces
and directories. The whole name is lower-cased for the route prefix and
table name. Running the command again overwrites generated files unless
--skip-existing is given.

Examples:
  # Create app/Modules/Blog
  ci4mod make blog

  # Create src/Modules/Shop under the Acme\Modules namespace
  ci4mod make Shop --base src/Modules --namespace 'Acme\Modules'

  # Show what would be created
  ci4mod make blog --dry-run -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMake(c, args[0], &flags, cfg)
		},
	}

	flags.AddTo(c)

	return c
}

func runMake(c *cobra.Command, raw string, flags *cmdutil.ScaffoldFlags, cfg *config.GlobalConfig) error {
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), "output", "Use one of: "+strings.Join(output.ValidFormats(), ", ")),
			oerrors.ExitValidationError)
	}

	if flags.Year < 0 {
		return oerrors.NewExitError(
			oerrors.NewValidationError(fmt.Sprintf("invalid year %d", flags.Year), "year", "Omit --year to use the current year."),
			oerrors.ExitValidationError)
	}

	fv := config.FlagValues{
		BasePath:    cmdutil.StringIfChanged(c, "base", flags.BasePath),
		Namespace:   cmdutil.StringIfChanged(c, "namespace", flags.Namespace),
		StrictNames: cmdutil.BoolIfChanged(c, "strict", flags.Strict),
	}
	if c.Flags().Changed("skip-existing") {
		policy := string(scaffold.PolicyOverwrite)
		if flags.SkipExisting {
			policy = string(scaffold.PolicySkipExisting)
		}
		fv.WritePolicy = &policy
	}

	resolved, err := cfg.Resolve(fv)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	policy, err := scaffold.ParseWritePolicy(resolved.WritePolicy)
	if err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), "writePolicy", "Set writePolicy to overwrite or skip."),
			oerrors.ExitValidationError)
	}

	normalize := naming.Normalize
	if resolved.StrictNames {
		normalize = naming.NormalizeStrict
	}
	name, err := normalize(raw)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	modLog := output.ModuleLogger(name.Pascal())
	modLog.Debug("resolved module name", "raw", name.Raw(), "pascal", name.Pascal(), "lower", name.Lower())

	plan := scaffold.NewPlan(resolved.BasePath, name)
	engine := scaffold.NewEngine(
		scaffold.WithPolicy(policy),
		scaffold.WithNamespaceRoot(resolved.Namespace),
		scaffold.WithYear(flags.Year),
		scaffold.WithDryRun(flags.DryRun),
	)

	var outcome *scaffold.Outcome
	scaffoldFn := func() error {
		outcome = engine.Scaffold(plan)
		return nil
	}
	if format == output.FormatText {
		err = output.RunWithSpinner(scaffoldFn, output.WithTitle(fmt.Sprintf("Scaffolding module %s...", name.Pascal())))
	} else {
		err = scaffoldFn()
	}
	if err != nil {
		return err
	}

	if err := cmdutil.WriteOutcome(c.OutOrStdout(), name.Pascal(), outcome, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	exitErr := cmdutil.OutcomeExitError(outcome)
	if exitErr != nil {
		modLog.Error("scaffolding finished with errors",
			"errors", len(outcome.Errors()),
			"exit", oerrors.ExitCodeName(oerrors.ExitCodeFromError(exitErr)))
	}

	return exitErr
}
