package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write atomically replaces the file at path with content, creating parent
// directories as needed. The content lands in a temporary file first and is
// renamed into place, so a crash mid-write never corrupts a previous report.
func Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, "report-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp report for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close report %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
