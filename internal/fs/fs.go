// Package fs provides filesystem adapters that implement document service
// interfaces.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// OSReader implements document.FileReader using os.ReadFile.
type OSReader struct{}

// ReadFile reads the full content of the file at path.
func (OSReader) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OSWriter implements document.FileWriter. Writes go through a temp file in
// the target directory followed by a rename, so a concurrent reader never
// observes a half-written file.
type OSWriter struct{}

// WriteFile replaces the file at path with data.
func (OSWriter) WriteFile(_ context.Context, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
