// Package scaffold materializes a module's directory tree and boilerplate
// files on disk.
package scaffold

import (
	"path/filepath"

	"github.com/ci4mod/cli/internal/naming"
	"github.com/ci4mod/cli/internal/templates"
)

// DefaultBasePath is where modules are generated relative to the project root.
const DefaultBasePath = "app/Modules"

// moduleDirs are the subdirectories of every module, in creation order.
var moduleDirs = []string{
	"Config",
	"Controllers",
	"Models",
	"Entities",
	"Database/Migrations",
	"Services",
	"Views",
}

// ModuleDirs returns the fixed module subdirectories in creation order,
// slash-separated.
func ModuleDirs() []string {
	out := make([]string, len(moduleDirs))
	copy(out, moduleDirs)
	return out
}

// Plan is the ordered set of directories and templates for one invocation.
type Plan struct {
	// Base is the directory that contains all modules.
	Base string

	// Name is the normalized module name.
	Name naming.ModuleName

	// Dirs are module-relative directories, slash-separated.
	Dirs []string

	// Templates are rendered in slice order.
	Templates []templates.Spec
}

// NewPlan builds the plan for a module from the fixed directory list and
// the template registry.
func NewPlan(base string, name naming.ModuleName) Plan {
	return Plan{
		Base:      base,
		Name:      name,
		Dirs:      ModuleDirs(),
		Templates: templates.List(),
	}
}

// ModuleDir returns the root directory of the module.
func (p Plan) ModuleDir() string {
	return filepath.Join(p.Base, p.Name.Pascal())
}

// DirPath returns the full path of a module-relative directory.
func (p Plan) DirPath(dir string) string {
	return filepath.Join(p.ModuleDir(), filepath.FromSlash(dir))
}
