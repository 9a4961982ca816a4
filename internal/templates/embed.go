package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed files/*.tmpl
var templateFS embed.FS

// mustParse parses an embedded template file. The files ship with the
// binary, so a parse failure is a programming error.
func mustParse(file string) *template.Template {
	content, err := templateFS.ReadFile("files/" + file)
	if err != nil {
		panic(fmt.Sprintf("reading embedded template %s: %v", file, err))
	}
	return template.Must(template.New(file).Option("missingkey=error").Parse(string(content)))
}
