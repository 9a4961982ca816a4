package scaffold

import "errors"

// DirStatus is the result of one directory operation.
type DirStatus string

// Directory statuses.
const (
	DirCreated DirStatus = "created"
	DirExists  DirStatus = "exists"
	DirFailed  DirStatus = "failed"
)

// FileStatus is the result of one template operation.
type FileStatus string

// File statuses.
const (
	FileWritten FileStatus = "written"
	FileSkipped FileStatus = "skipped"
	FileFailed  FileStatus = "failed"
)

// DirResult records what happened to one directory.
type DirResult struct {
	// Dir is the module-relative directory (e.g. "Database/Migrations").
	Dir string

	// Path is the full directory path.
	Path string

	Status DirStatus

	// Err is a *DirectoryCreationError when Status is DirFailed.
	Err error
}

// FileResult records what happened to one template.
type FileResult struct {
	// Key is the template key.
	Key string

	// Path is the full file path. It is empty if the path could not be computed.
	Path string

	Status FileStatus

	// Size is the number of bytes written (or that would be written on a dry run).
	Size int

	// Err is a *FileWriteError when Status is FileFailed.
	Err error
}

// Outcome is the result of one Scaffold call. It is not modified after
// Scaffold returns.
type Outcome struct {
	moduleDir string
	dryRun    bool
	dirs      []DirResult
	files     []FileResult
}

// ModuleDir returns the module root directory.
func (o *Outcome) ModuleDir() string { return o.moduleDir }

// DryRun reports whether the outcome was computed without touching the filesystem.
func (o *Outcome) DryRun() bool { return o.dryRun }

// Dirs returns the directory results in plan order.
func (o *Outcome) Dirs() []DirResult {
	out := make([]DirResult, len(o.dirs))
	copy(out, o.dirs)
	return out
}

// Files returns the template results in plan order.
func (o *Outcome) Files() []FileResult {
	out := make([]FileResult, len(o.files))
	copy(out, o.files)
	return out
}

// Errors returns every sub-operation error, directories first.
func (o *Outcome) Errors() []error {
	var errs []error
	for _, d := range o.dirs {
		if d.Err != nil {
			errs = append(errs, d.Err)
		}
	}
	for _, f := range o.files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Failed reports whether any operation failed.
func (o *Outcome) Failed() bool {
	return len(o.Errors()) > 0
}

// Err joins every sub-operation error, or returns nil when all succeeded.
func (o *Outcome) Err() error {
	return errors.Join(o.Errors()...)
}

// DirCount returns the number of directories with the given status.
func (o *Outcome) DirCount(status DirStatus) int {
	n := 0
	for _, d := range o.dirs {
		if d.Status == status {
			n++
		}
	}
	return n
}

// FileCount returns the number of templates with the given status.
func (o *Outcome) FileCount(status FileStatus) int {
	n := 0
	for _, f := range o.files {
		if f.Status == status {
			n++
		}
	}
	return n
}
