package scaffold

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// writeFileAtomic writes content to a temporary file next to path and
// renames it into place, so readers never observe a partially written
// file. The temporary file is removed on any failure.
func writeFileAtomic(fs afero.Fs, path string, content []byte, perm os.FileMode) (err error) {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = fs.Remove(tmpName)
		}
	}()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		return err
	}

	if err = fs.Chmod(tmpName, perm); err != nil {
		return err
	}

	return fs.Rename(tmpName, path)
}
