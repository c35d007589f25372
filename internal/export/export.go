package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/wordcycle/internal"
	"codeberg.org/snonux/wordcycle/internal/review"
)

// FileName returns the snapshot name words_<index>_<YYYYMMDD_HHMMSS>.txt
func FileName(oneBasedIndex int, t time.Time) string {
	return fmt.Sprintf("words_%d_%s.txt", oneBasedIndex, internal.Stamp(t))
}

// SuggestedName returns the snapshot name for the session's current position
func SuggestedName(s *review.Session, now time.Time) string {
	return FileName(s.View().Progress.Position, now)
}

// Save writes the session's word list into dir and returns the file path
func Save(dir string, s *review.Session, now time.Time) (string, error) {
	content, err := s.Export()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, SuggestedName(s, now))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
