package templates

import (
	"fmt"
	"strings"
	"text/template"

	oerrors "github.com/ci4mod/cli/internal/errors"
)

// Template keys, in registration order.
const (
	KeyRoutes     = "routes"
	KeyController = "controller"
	KeyModel      = "model"
	KeyEntity     = "entity"
	KeyService    = "service"
	KeyView       = "view"
)

// registry is built once at init and never modified afterwards.
// Accessors hand out copies.
var registry = []Spec{
	newSpec(KeyRoutes, "Route group bound to the module controller",
		"Config/Routes.php", "routes.php.tmpl"),
	newSpec(KeyController, "Controller with an index action rendering the module view",
		"Controllers/{{.Pascal}}Controller.php", "controller.php.tmpl"),
	newSpec(KeyModel, "Model bound to the module table",
		"Models/{{.Pascal}}Model.php", "model.php.tmpl"),
	newSpec(KeyEntity, "Empty domain entity",
		"Entities/{{.Pascal}}.php", "entity.php.tmpl"),
	newSpec(KeyService, "Empty service for business logic",
		"Services/{{.Pascal}}Service.php", "service.php.tmpl"),
	newSpec(KeyView, "Landing page echoing the module name and year",
		"Views/index.php", "view.php.tmpl"),
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, s := range registry {
		if _, dup := idx[s.Key]; dup {
			panic(fmt.Sprintf("duplicate template key %q", s.Key))
		}
		idx[s.Key] = i
	}
	return idx
}()

func newSpec(key, description, pathPattern, file string) Spec {
	return Spec{
		Key:         key,
		Description: description,
		PathPattern: pathPattern,
		Source:      file,
		path:        template.Must(template.New(key + "-path").Option("missingkey=error").Parse(pathPattern)),
		body:        mustParse(file),
	}
}

// List returns all templates in registration order.
func List() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Get returns a template by key.
func Get(key string) (Spec, error) {
	i, ok := registryIndex[key]
	if !ok {
		return Spec{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", key), "",
			fmt.Sprintf("Valid templates: %s", strings.Join(Keys(), ", ")))
	}
	return registry[i], nil
}

// Keys returns all template keys in registration order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, s := range registry {
		keys[i] = s.Key
	}
	return keys
}
