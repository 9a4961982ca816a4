package templates

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/naming"
)

func blogData(t *testing.T) Data {
	t.Helper()
	name, err := naming.Normalize("blog")
	require.NoError(t, err)
	return NewData(name, "", 2024)
}

func TestKeys_RegistrationOrder(t *testing.T) {
	assert.Equal(t, []string{"routes", "controller", "model", "entity", "service", "view"}, Keys())
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	require.Len(t, list, 6)

	list[0].Key = "mutated"
	assert.Equal(t, KeyRoutes, List()[0].Key)
}

func TestGet(t *testing.T) {
	spec, err := Get(KeyModel)
	require.NoError(t, err)
	assert.Equal(t, "Models/{{.Pascal}}Model.php", spec.PathPattern)
	assert.NotEmpty(t, spec.Description)

	_, err = Get("migration")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "routes, controller, model, entity, service, view")
}

func TestNewData(t *testing.T) {
	data := blogData(t)
	assert.Equal(t, "Blog", data.Pascal)
	assert.Equal(t, "blog", data.Lower)
	assert.Equal(t, `App\Modules`, data.NamespaceRoot)
	assert.Equal(t, `App\Modules\Blog`, data.ModuleNamespace)
	assert.Equal(t, 2024, data.Year)

	name, err := naming.Normalize("shop")
	require.NoError(t, err)
	custom := NewData(name, `Acme\Modules`, 2030)
	assert.Equal(t, `Acme\Modules\Shop`, custom.ModuleNamespace)
}

func TestSpecPath(t *testing.T) {
	data := blogData(t)

	want := map[string]string{
		KeyRoutes:     "Config/Routes.php",
		KeyController: "Controllers/BlogController.php",
		KeyModel:      "Models/BlogModel.php",
		KeyEntity:     "Entities/Blog.php",
		KeyService:    "Services/BlogService.php",
		KeyView:       "Views/index.php",
	}

	seen := map[string]bool{}
	for _, spec := range List() {
		path, err := spec.Path(data)
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash(want[spec.Key]), path, spec.Key)
		assert.False(t, seen[path], "duplicate path %s", path)
		seen[path] = true
	}
}

func TestRender_Blog(t *testing.T) {
	data := blogData(t)

	render := func(key string) string {
		t.Helper()
		spec, err := Get(key)
		require.NoError(t, err)
		content, err := spec.Render(data)
		require.NoError(t, err)
		return string(content)
	}

	routes := render(KeyRoutes)
	assert.Contains(t, routes, `namespace App\Modules\Blog\Config;`)
	assert.Contains(t, routes, `$routes->group('blog', ['namespace' => 'App\Modules\Blog\Controllers']`)
	assert.Contains(t, routes, `$routes->get('/', 'BlogController::index');`)

	controller := render(KeyController)
	assert.Contains(t, controller, `namespace App\Modules\Blog\Controllers;`)
	assert.Contains(t, controller, "class BlogController extends BaseController")
	assert.Contains(t, controller, "public function index()")
	assert.Contains(t, controller, `return view('App\Modules\Blog\Views\index');`)
	assert.Equal(t, 1, strings.Count(controller, "public function"), "controller has a single action")

	model := render(KeyModel)
	assert.Contains(t, model, `namespace App\Modules\Blog\Models;`)
	assert.Contains(t, model, "class BlogModel extends Model")
	assert.Contains(t, model, "protected $table = 'blog';")
	assert.Contains(t, model, "protected $primaryKey = 'id';")
	assert.Contains(t, model, "protected $allowedFields = [];")

	entity := render(KeyEntity)
	assert.Contains(t, entity, `namespace App\Modules\Blog\Entities;`)
	assert.Contains(t, entity, "use CodeIgniter\\Entity\\Entity;")
	assert.Contains(t, entity, "class Blog extends Entity")

	service := render(KeyService)
	assert.Contains(t, service, `namespace App\Modules\Blog\Services;`)
	assert.Contains(t, service, "class BlogService")

	view := render(KeyView)
	assert.Contains(t, view, "<title>Blog Module</title>")
	assert.Contains(t, view, "<strong>Blog</strong>")
	assert.Contains(t, view, "&copy; 2024 Blog")
}

func TestRender_NamespaceMatchesPath(t *testing.T) {
	name, err := naming.Normalize("UserProfile")
	require.NoError(t, err)
	data := NewData(name, "", 2024)

	for _, spec := range List() {
		if spec.Key == KeyView {
			continue
		}
		path, err := spec.Path(data)
		require.NoError(t, err)
		content, err := spec.Render(data)
		require.NoError(t, err)

		dir := filepath.ToSlash(filepath.Dir(path))
		wantNS := `namespace App\Modules\UserProfile\` + strings.ReplaceAll(dir, "/", `\`) + ";"
		assert.Contains(t, string(content), wantNS, spec.Key)
	}
}

func TestRender_ViewReferenceMatchesViewPath(t *testing.T) {
	data := blogData(t)

	view, err := Get(KeyView)
	require.NoError(t, err)
	viewPath, err := view.Path(data)
	require.NoError(t, err)

	controller, err := Get(KeyController)
	require.NoError(t, err)
	content, err := controller.Render(data)
	require.NoError(t, err)

	ref := data.ModuleNamespace + `\` + strings.ReplaceAll(strings.TrimSuffix(filepath.ToSlash(viewPath), ".php"), "/", `\`)
	assert.Contains(t, string(content), "view('"+ref+"')")
}

func TestRender_IsPure(t *testing.T) {
	data := blogData(t)
	for _, spec := range List() {
		first, err := spec.Render(data)
		require.NoError(t, err)
		second, err := spec.Render(data)
		require.NoError(t, err)
		assert.Equal(t, first, second, spec.Key)
	}
}

func TestRender_OnlyViewDependsOnYear(t *testing.T) {
	name, err := naming.Normalize("blog")
	require.NoError(t, err)
	a := NewData(name, "", 2024)
	b := NewData(name, "", 2031)

	for _, spec := range List() {
		ca, err := spec.Render(a)
		require.NoError(t, err)
		cb, err := spec.Render(b)
		require.NoError(t, err)
		if spec.Key == KeyView {
			assert.NotEqual(t, ca, cb)
			assert.Equal(t, strings.Replace(string(ca), "2024", "2031", 1), string(cb))
			continue
		}
		assert.Equal(t, ca, cb, spec.Key)
	}
}
