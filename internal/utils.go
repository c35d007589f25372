package internal

import (
	"time"
)

// Version is the current wordcycle release
const Version = "0.4.1"

// StampLayout is the timestamp layout used in exported file names
const StampLayout = "20060102_150405"

// Stamp formats t for use in file names (YYYYMMDD_HHMMSS, local time)
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
