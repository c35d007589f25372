package internal

import (
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	if got := Stamp(ts); got != "20240305_070809" {
		t.Errorf("Stamp() = %q, want %q", got, "20240305_070809")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"English Vocabulary", "English_Vocabulary"},
		{"deck-1_final", "deck-1_final"},
		{"a/b\\c", "a_b_c"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
