package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/ci4mod/cli/internal/output"
	"github.com/ci4mod/cli/internal/scaffold"
	"github.com/ci4mod/cli/internal/templates"
)

// Report is the machine-readable form of a scaffold outcome.
type Report struct {
	Module      string      `json:"module"`
	ModuleDir   string      `json:"moduleDir"`
	DryRun      bool        `json:"dryRun,omitempty"`
	Failed      bool        `json:"failed"`
	Directories []DirEntry  `json:"directories"`
	Files       []FileEntry `json:"files"`
}

// DirEntry is one directory line of a Report.
type DirEntry struct {
	Dir    string `json:"dir"`
	Path   string `json:"path"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// FileEntry is one template line of a Report.
type FileEntry struct {
	Key    string `json:"key"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"`
	Size   int    `json:"size,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewReport converts an outcome into a Report.
func NewReport(module string, outcome *scaffold.Outcome) Report {
	r := Report{
		Module:      module,
		ModuleDir:   outcome.ModuleDir(),
		DryRun:      outcome.DryRun(),
		Failed:      outcome.Failed(),
		Directories: []DirEntry{},
		Files:       []FileEntry{},
	}

	for _, d := range outcome.Dirs() {
		e := DirEntry{Dir: d.Dir, Path: d.Path, Status: string(d.Status)}
		if d.Err != nil {
			e.Error = d.Err.Error()
		}
		r.Directories = append(r.Directories, e)
	}

	for _, f := range outcome.Files() {
		e := FileEntry{Key: f.Key, Path: f.Path, Status: string(f.Status), Size: f.Size}
		if f.Err != nil {
			e.Error = f.Err.Error()
		}
		r.Files = append(r.Files, e)
	}

	return r
}

// WriteOutcome prints the outcome of scaffolding module in the given format.
func WriteOutcome(w io.Writer, module string, outcome *scaffold.Outcome, format output.Format) error {
	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(NewReport(module, outcome))
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case output.FormatJSON:
		data, err := json.MarshalIndent(NewReport(module, outcome), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		writeOutcomeText(w, module, outcome)
		return nil
	}
}

func writeOutcomeText(w io.Writer, module string, outcome *scaffold.Outcome) {
	for _, d := range outcome.Dirs() {
		fmt.Fprintln(w, output.FormatPathLine("d", d.Path, string(d.Status)))
	}
	for _, f := range outcome.Files() {
		path := f.Path
		if path == "" {
			path = f.Key
		}
		fmt.Fprintln(w, output.FormatPathLine("f", path, string(f.Status)))
	}

	if !outcome.Failed() {
		if tree := outcomeTree(outcome); tree != "" {
			fmt.Fprintln(w)
			fmt.Fprint(w, tree)
		}
	}

	fmt.Fprintln(w)
	errs := outcome.Errors()
	switch {
	case len(errs) > 0:
		fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("Module %s scaffolded with %d error(s)", module, len(errs))))
		lines := make([]string, len(errs))
		for i, err := range errs {
			lines[i] = err.Error()
		}
		output.Details(w, strings.Join(lines, "\n"))
	case outcome.DryRun():
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Dry run: module %s would be scaffolded in %s", module, outcome.ModuleDir())))
	default:
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Module %s scaffolded in %s", module, outcome.ModuleDir())))
	}
}

// outcomeTree renders the module layout with each file's template description.
func outcomeTree(outcome *scaffold.Outcome) string {
	root := outcome.ModuleDir()
	entries := make(map[string]string)

	for _, d := range outcome.Dirs() {
		entries[filepath.ToSlash(d.Dir)+"/"] = ""
	}
	for _, f := range outcome.Files() {
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			continue
		}
		desc := ""
		if spec, err := templates.Get(f.Key); err == nil {
			desc = spec.Description
		}
		entries[filepath.ToSlash(rel)] = desc
	}

	return output.RenderFileTree(filepath.Base(root), entries)
}
