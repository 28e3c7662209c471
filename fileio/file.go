package fileio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadFile reads the whole file at path as text. Invalid UTF-8 is kept as is
// and decodes to U+FFFD when the text is split into runes.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fileio: read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the file at path with text. The data is written to a
// temporary file in the same directory and renamed over path, so readers
// see either the old or the new content. An existing file's permissions are
// kept; new files get 0644.
func Write(path, text string) error {
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("fileio: write %s: not a regular file", path)
		}
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("fileio: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("fileio: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("fileio: rename %s: %w", path, err)
	}
	return nil
}
