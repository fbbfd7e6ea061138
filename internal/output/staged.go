// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders a ResultSet as a stdout table, a CSV file, or a
// JSON file. File targets are written through a staged temp file so a
// failed run never leaves a partial file or clobbers an existing one.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileStaged serializes through a temp file in the destination
// directory and renames it into place only after write succeeds.
func writeFileStaged(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gtdb-cli-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := write(tmp)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
