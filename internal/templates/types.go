// Package templates holds the fixed set of file templates that make up a
// generated module.
package templates

import (
	"github.com/ci4mod/cli/internal/naming"
)

// DefaultNamespaceRoot is the PHP namespace under which modules live when
// they are generated into app/Modules.
const DefaultNamespaceRoot = `App\Modules`

// Data holds the values substituted into templates and path patterns.
type Data struct {
	// Pascal is the module identifier (e.g. "Blog").
	Pascal string

	// Lower is the route prefix and table name (e.g. "blog").
	Lower string

	// NamespaceRoot is the PHP namespace containing all modules (e.g. `App\Modules`).
	NamespaceRoot string

	// ModuleNamespace is NamespaceRoot joined with Pascal (e.g. `App\Modules\Blog`).
	ModuleNamespace string

	// Year is the copyright year printed by the view template.
	Year int
}

// NewData builds template data for a module. An empty namespaceRoot falls
// back to DefaultNamespaceRoot.
func NewData(name naming.ModuleName, namespaceRoot string, year int) Data {
	if namespaceRoot == "" {
		namespaceRoot = DefaultNamespaceRoot
	}
	return Data{
		Pascal:          name.Pascal(),
		Lower:           name.Lower(),
		NamespaceRoot:   namespaceRoot,
		ModuleNamespace: namespaceRoot + `\` + name.Pascal(),
		Year:            year,
	}
}
