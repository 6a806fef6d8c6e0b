package format

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadError indicates that a file could not be read for formatting. It is
// distinct from formatting diagnostics.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError indicates that a formatted result could not be written back.
// It is distinct from formatting diagnostics.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// File formats the file at path and writes the result back to the same
// path, but only when the formatted text differs from the current
// content. A clean file is left completely untouched. The write replaces
// the file content in one atomic rename; there are no partial writes.
// The formatted text is returned either way.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &LoadError{Path: path, Err: err}
	}
	input := string(data)
	formatted, err := Source(input, path)
	if err != nil {
		return "", err
	}
	if formatted == input {
		return formatted, nil
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := writeFileAtomic(path, []byte(formatted), mode); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return formatted, nil
}

// writeFileAtomic writes data to a temporary file in the target's
// directory and renames it over the target.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".uiua-fmt-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
