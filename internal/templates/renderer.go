package templates

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
)

// Spec describes one generated file.
type Spec struct {
	// Key uniquely identifies the template (e.g. "controller").
	Key string

	// Description is a short human-readable summary.
	Description string

	// PathPattern is the output path relative to the module directory,
	// with {{.Pascal}} standing for the module identifier.
	PathPattern string

	// Source is the embedded template file name.
	Source string

	path *template.Template
	body *template.Template
}

// Path returns the output path relative to the module directory, using the
// host path separator.
func (s Spec) Path(data Data) (string, error) {
	var buf bytes.Buffer
	if err := s.path.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("expanding path of template %s: %w", s.Key, err)
	}
	return filepath.FromSlash(buf.String()), nil
}

// Render produces the file content for data. It has no side effects.
func (s Spec) Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.body.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", s.Key, err)
	}
	return buf.Bytes(), nil
}
