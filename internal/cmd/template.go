package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ci4mod/cli/internal/cmdutil"
	"github.com/ci4mod/cli/internal/config"
	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/naming"
	"github.com/ci4mod/cli/internal/output"
	"github.com/ci4mod/cli/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect module templates",
		Long: `Commands for discovering and inspecting the files generated by 'ci4mod make'.

Each template has a key, a path relative to the module directory and a
body rendered from the module name.`,
	}

	c.AddCommand(
		newTemplateListCmd(),
		newTemplateShowCmd(cfg),
	)

	return c
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long:  `Lists every template in the order 'ci4mod make' renders them.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tbl := output.NewTable("KEY", "PATH", "DESCRIPTION")
			for _, spec := range templates.List() {
				tbl.Row(spec.Key, spec.PathPattern, spec.Description)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

type templateShowOptions struct {
	module    string
	namespace string
	year      int
}

func newTemplateShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	opts := &templateShowOptions{}

	c := &cobra.Command{
		Use:   "show <key>",
		Short: "Show template details",
		Long: `Shows the description, path pattern and source of a template.

With --module the template is rendered for that module name and the
resulting path and content are printed. Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplateShow(c, args[0], opts, cfg)
		},
	}

	c.Flags().StringVar(&opts.module, "module", "", "Render the template for this module name")
	c.Flags().StringVar(&opts.namespace, "namespace", "", "PHP namespace root (default: from config)")
	c.Flags().IntVar(&opts.year, "year", 0, "Year rendered into the view (default: current year)")

	return c
}

func runTemplateShow(c *cobra.Command, key string, opts *templateShowOptions, cfg *config.GlobalConfig) error {
	spec, err := templates.Get(key)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	w := c.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", output.StyleNoun.Render("Key:"), spec.Key)
	fmt.Fprintf(w, "%s %s\n", output.StyleNoun.Render("Description:"), spec.Description)
	fmt.Fprintf(w, "%s %s\n", output.StyleNoun.Render("Path:"), spec.PathPattern)
	fmt.Fprintf(w, "%s %s\n", output.StyleNoun.Render("Source:"), spec.Source)

	if !c.Flags().Changed("module") {
		return nil
	}

	name, err := naming.Normalize(opts.module)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	resolved, err := cfg.Resolve(config.FlagValues{
		Namespace: cmdutil.StringIfChanged(c, "namespace", opts.namespace),
	})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	year := opts.year
	if year == 0 {
		year = time.Now().Year()
	}

	data := templates.NewData(name, resolved.Namespace, year)
	path, err := spec.Path(data)
	if err != nil {
		return err
	}
	content, err := spec.Render(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleDim.Render("# "+path))
	_, err = w.Write(content)
	return err
}
