package generator

import (
	"os"
	"path/filepath"

	"github.com/yankeeinlondon/schematic/internal/fileutil"
)

// WriteAtomic writes content to path using a temp-file-then-rename protocol.
// The temp file is created in the destination directory so the final rename
// stays on one filesystem and is atomic. Missing parent directories are
// created. On any failure the prior destination content, if any, is left
// untouched.
func WriteAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fileutil.DirDefault); err != nil {
		return &WriteError{Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Chmod(fileutil.ReadableByAll); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteFiles persists every generated file into outputDir, each through
// WriteAtomic. Concurrent batches writing distinct files into the same
// directory are safe; the rename protocol needs no extra locking.
func (r *Result) WriteFiles(outputDir string) error {
	for _, file := range r.Files {
		if filepath.Base(file.Name) != file.Name {
			return &WriteError{Path: file.Name, Err: os.ErrInvalid}
		}
		if err := WriteAtomic(filepath.Join(outputDir, file.Name), file.Content); err != nil {
			return err
		}
	}
	return nil
}
