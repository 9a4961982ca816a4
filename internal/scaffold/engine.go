package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/ci4mod/cli/internal/output"
	"github.com/ci4mod/cli/internal/templates"
)

const (
	// dirPerm grants read, write and search to owner and group.
	dirPerm os.FileMode = 0o775

	filePerm os.FileMode = 0o644
)

// WritePolicy decides what happens when a target file already exists.
type WritePolicy string

const (
	// PolicyOverwrite replaces existing files without checking them.
	PolicyOverwrite WritePolicy = "overwrite"

	// PolicySkipExisting leaves existing files alone.
	PolicySkipExisting WritePolicy = "skip"
)

// ParseWritePolicy parses a policy name. The empty string means PolicyOverwrite.
func ParseWritePolicy(s string) (WritePolicy, error) {
	switch WritePolicy(s) {
	case "", PolicyOverwrite:
		return PolicyOverwrite, nil
	case PolicySkipExisting:
		return PolicySkipExisting, nil
	default:
		return "", fmt.Errorf("unknown write policy %q (valid: %s, %s)", s, PolicyOverwrite, PolicySkipExisting)
	}
}

// Engine creates module directories and renders templates into them.
// An Engine holds only configuration; every Scaffold call inspects the
// filesystem afresh.
type Engine struct {
	fs            afero.Fs
	policy        WritePolicy
	namespaceRoot string
	year          int
	dryRun        bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithFs sets the filesystem. The default is the operating system filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithPolicy sets the write policy.
func WithPolicy(p WritePolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithNamespaceRoot sets the PHP namespace that contains all modules.
func WithNamespaceRoot(ns string) Option {
	return func(e *Engine) {
		e.namespaceRoot = ns
	}
}

// WithYear fixes the year rendered into the view. Zero means the current year.
func WithYear(year int) Option {
	return func(e *Engine) {
		e.year = year
	}
}

// WithDryRun makes Scaffold report what it would do without writing.
func WithDryRun(dryRun bool) Option {
	return func(e *Engine) {
		e.dryRun = dryRun
	}
}

// NewEngine creates an engine. Defaults: OS filesystem, PolicyOverwrite,
// templates.DefaultNamespaceRoot and the current year.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fs:            afero.NewOsFs(),
		policy:        PolicyOverwrite,
		namespaceRoot: templates.DefaultNamespaceRoot,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scaffold runs the directory phase and then the rendering phase. It never
// stops early: each directory and each file is attempted independently and
// every failure is recorded in the returned Outcome.
func (e *Engine) Scaffold(plan Plan) *Outcome {
	year := e.year
	if year == 0 {
		year = time.Now().Year()
	}

	out := &Outcome{
		moduleDir: plan.ModuleDir(),
		dryRun:    e.dryRun,
		dirs:      make([]DirResult, 0, len(plan.Dirs)),
		files:     make([]FileResult, 0, len(plan.Templates)),
	}

	output.Debug("scaffolding module",
		"module", plan.Name.Pascal(),
		"dir", out.moduleDir,
		"policy", e.policy,
		"dry_run", e.dryRun)

	// failedDirs maps a directory path to its creation error. Templates
	// targeting such a directory report that error instead of writing.
	failedDirs := make(map[string]error)
	for _, dir := range plan.Dirs {
		res := e.ensureDir(dir, plan.DirPath(dir))
		if res.Status == DirFailed {
			failedDirs[filepath.Clean(res.Path)] = res.Err
		}
		out.dirs = append(out.dirs, res)
	}

	data := templates.NewData(plan.Name, e.namespaceRoot, year)
	for _, spec := range plan.Templates {
		out.files = append(out.files, e.renderFile(out.moduleDir, spec, data, failedDirs))
	}

	return out
}

// ensureDir creates path if it does not already exist as a directory.
func (e *Engine) ensureDir(dir, path string) DirResult {
	res := DirResult{Dir: dir, Path: path}

	info, err := e.fs.Stat(path)
	if err == nil {
		if info.IsDir() {
			res.Status = DirExists
			output.Debug("directory exists", "path", path)
			return res
		}
		res.Status = DirFailed
		res.Err = &DirectoryCreationError{Path: path, Err: ErrNotDirectory}
		return res
	}
	if !errors.Is(err, fs.ErrNotExist) {
		res.Status = DirFailed
		res.Err = &DirectoryCreationError{Path: path, Err: err}
		output.Debug("directory stat failed", "path", path, "error", err)
		return res
	}

	if e.dryRun {
		res.Status = DirCreated
		return res
	}

	if err := e.fs.MkdirAll(path, dirPerm); err != nil {
		res.Status = DirFailed
		res.Err = &DirectoryCreationError{Path: path, Err: err}
		output.Debug("directory creation failed", "path", path, "error", err)
		return res
	}

	res.Status = DirCreated
	output.Debug("created directory", "path", path)
	return res
}

// renderFile renders one template and writes it according to the policy.
func (e *Engine) renderFile(moduleDir string, spec templates.Spec, data templates.Data, failedDirs map[string]error) FileResult {
	res := FileResult{Key: spec.Key}

	rel, err := spec.Path(data)
	if err != nil {
		res.Status = FileFailed
		res.Err = &FileWriteError{Key: spec.Key, Path: spec.PathPattern, Err: err}
		return res
	}
	res.Path = filepath.Join(moduleDir, rel)

	content, err := spec.Render(data)
	if err != nil {
		res.Status = FileFailed
		res.Err = &FileWriteError{Key: spec.Key, Path: res.Path, Err: err}
		return res
	}
	res.Size = len(content)

	if dirErr, ok := failedDirs[filepath.Dir(res.Path)]; ok {
		res.Status = FileFailed
		res.Err = &FileWriteError{Key: spec.Key, Path: res.Path, Err: dirErr}
		return res
	}

	if e.policy == PolicySkipExisting {
		if _, err := e.fs.Stat(res.Path); err == nil {
			res.Status = FileSkipped
			output.Debug("skipped existing file", "path", res.Path)
			return res
		}
	}

	if e.dryRun {
		res.Status = FileWritten
		return res
	}

	if err := writeFileAtomic(e.fs, res.Path, content, filePerm); err != nil {
		res.Status = FileFailed
		res.Err = &FileWriteError{Key: spec.Key, Path: res.Path, Err: err}
		output.Debug("write failed", "path", res.Path, "error", err)
		return res
	}

	res.Status = FileWritten
	output.Debug("wrote file", "path", res.Path, "bytes", res.Size)
	return res
}
