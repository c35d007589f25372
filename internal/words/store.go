package words

import (
	"fmt"
	"os"
	"strings"
)

const (
	fieldSeparator  = "|"
	recordSeparator = "\n"
	fieldCount      = 8
)

// Store is the ordered list of records loaded from a word file. Its length
// is fixed after Load; records are only mutated in place.
type Store struct {
	records []Record
}

// NewStore creates a store holding a copy of records
func NewStore(records []Record) *Store {
	s := &Store{records: make([]Record, len(records))}
	copy(s.records, records)
	return s
}

// Load parses raw word file content. Tabs are removed before splitting,
// each line is one record with up to eight |-separated fields, and missing
// fields default to empty text or false. Parsing never fails.
func Load(raw string) *Store {
	raw = strings.ReplaceAll(raw, "\t", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &Store{}
	}

	lines := strings.Split(raw, recordSeparator)
	s := &Store{records: make([]Record, 0, len(lines))}
	for _, line := range lines {
		s.records = append(s.records, parseRecord(strings.TrimSuffix(line, "\r")))
	}
	return s
}

// ReadFile reads and parses a word file
func ReadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file %s: %w", path, err)
	}
	return Load(string(data)), nil
}

func parseRecord(line string) Record {
	var parts [fieldCount]string
	copy(parts[:], strings.Split(line, fieldSeparator))

	return Record{
		Word:         parts[0],
		Phonetic:     parts[1],
		PartOfSpeech: parts[2],
		Meaning:      parts[3],
		Mnemonic:     parts[4],
		Learned:      parts[5] == "1",
		Favorited:    parts[6] == "1",
		Mastered:     parts[7] == "1",
	}
}

// Serialize renders the store in the word file format. It is the inverse
// of Load for canonical input.
func (s *Store) Serialize() string {
	lines := make([]string, len(s.records))
	for i, r := range s.records {
		lines[i] = strings.Join([]string{
			r.Word,
			r.Phonetic,
			r.PartOfSpeech,
			r.Meaning,
			r.Mnemonic,
			flag(r.Learned),
			flag(r.Favorited),
			flag(r.Mastered),
		}, fieldSeparator)
	}
	return strings.Join(lines, recordSeparator)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// Record returns the record at index
func (s *Store) Record(index int) (Record, bool) {
	if !s.valid(index) {
		return Record{}, false
	}
	return s.records[index], true
}

// Records returns a copy of all records
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// EditField replaces an editable field of the record at index. It reports
// whether the record changed; an unchanged value or a bad index is a no-op.
func (s *Store) EditField(index int, field Field, value string) bool {
	if !s.valid(index) {
		return false
	}
	r := &s.records[index]
	if r.Get(field) == value {
		return false
	}
	r.set(field, value)
	return true
}

// ToggleLearned flips the learned flag of the record at index
func (s *Store) ToggleLearned(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.records[index].Learned = !s.records[index].Learned
	return true
}

// ToggleFavorited flips the favorited flag of the record at index
func (s *Store) ToggleFavorited(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.records[index].Favorited = !s.records[index].Favorited
	return true
}

// ToggleMastered flips the mastered flag of the record at index
func (s *Store) ToggleMastered(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.records[index].Mastered = !s.records[index].Mastered
	return true
}

// UnlearnedCount counts records not yet learned
func (s *Store) UnlearnedCount() int {
	return s.UnlearnedThrough(len(s.records) - 1)
}

// UnlearnedThrough counts unlearned records in [0, index]
func (s *Store) UnlearnedThrough(index int) int {
	count := 0
	for i := 0; i <= index && i < len(s.records); i++ {
		if !s.records[i].Learned {
			count++
		}
	}
	return count
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.records)
}
