package tangler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// writeIfChanged compares content against whatever is already at path and
// performs the write only when they differ, so an unmodified output keeps
// its mtime. When a write is needed, content lands in a sibling temp file
// first and is renamed into place, so a reader never observes a partial
// file; on any failure after the temp file is created it is removed rather
// than left behind.
func writeIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, fmt.Errorf("reading existing %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		os.Remove(tmp)
		return false, fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false, fmt.Errorf("renaming temp file into place for %s: %w", path, err)
	}
	return true, nil
}
