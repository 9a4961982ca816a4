package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ci4mod/cli/internal/templates"
)

func TestModuleDirs(t *testing.T) {
	assert.Equal(t, []string{
		"Config",
		"Controllers",
		"Models",
		"Entities",
		"Database/Migrations",
		"Services",
		"Views",
	}, ModuleDirs())

	dirs := ModuleDirs()
	dirs[0] = "Changed"
	assert.Equal(t, "Config", ModuleDirs()[0])
}

func TestNewPlan(t *testing.T) {
	plan := NewPlan("app/Modules", mustName(t, "userProfile"))

	assert.Equal(t, filepath.Join("app", "Modules", "UserProfile"), plan.ModuleDir())
	assert.Equal(t, filepath.Join("app", "Modules", "UserProfile", "Database", "Migrations"), plan.DirPath("Database/Migrations"))
	assert.Len(t, plan.Dirs, 7)
	assert.Len(t, plan.Templates, 6)
	assert.Equal(t, "routes", plan.Templates[0].Key)
}

func TestNewPlan_TemplatesLandInModuleDirs(t *testing.T) {
	plan := NewPlan("app/Modules", mustName(t, "blog"))
	data := templates.NewData(plan.Name, "", 2024)

	known := map[string]bool{}
	for _, d := range plan.Dirs {
		known[filepath.FromSlash(d)] = true
	}
	for _, spec := range plan.Templates {
		rel, err := spec.Path(data)
		if assert.NoError(t, err) {
			assert.True(t, known[filepath.Dir(rel)], "%s is written outside the module directories", rel)
		}
	}
}
