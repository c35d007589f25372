package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportPattern matches the snapshot files written by the export package
const ExportPattern = "words_*.txt"

// ArchiveExports moves all snapshot files in dir into a timestamped
// folder below dir/archive and returns that folder
func ArchiveExports(dir string) (string, error) {
	// Check if export directory exists
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", fmt.Errorf("export directory does not exist: %s", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, ExportPattern))
	if err != nil {
		return "", fmt.Errorf("failed to list exports: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no exports to archive in %s", dir)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(dir, "archive", fmt.Sprintf("exports-%s", timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(dir, "archive", fmt.Sprintf("exports-%s", timestamp))
	}

	if err := os.MkdirAll(archivePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, src := range matches {
		dst := filepath.Join(archivePath, filepath.Base(src))
		if err := os.Rename(src, dst); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", filepath.Base(src), err)
		}
	}

	return archivePath, nil
}
