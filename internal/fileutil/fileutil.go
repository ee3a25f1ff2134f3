// Package fileutil writes generated documents to disk.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated documents, which
// are meant to be published.
const ReadableByAll os.FileMode = 0o644

// DirMode is the permission mode for output directories created on demand.
const DirMode os.FileMode = 0o755

// WriteOutput writes data to path, creating missing parent directories.
// The path is expected to be sanitized by the caller.
func WriteOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
		return fmt.Errorf("fileutil: creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, ReadableByAll); err != nil { //nolint:gosec // G306 - generated documents are public
		return fmt.Errorf("fileutil: writing %s: %w", path, err)
	}
	return nil
}
