package words

import (
	"fmt"
	"strings"
)

// Record is one vocabulary entry
type Record struct {
	Word         string
	Phonetic     string
	PartOfSpeech string
	Meaning      string
	Mnemonic     string

	Learned   bool
	Favorited bool
	Mastered  bool
}

// Field identifies one of the text fields that can be edited in place.
// The word itself is not editable.
type Field int

const (
	FieldPhonetic Field = iota
	FieldPartOfSpeech
	FieldMeaning
	FieldMnemonic
)

// EditableFields lists the editable fields in display order
var EditableFields = []Field{FieldPhonetic, FieldPartOfSpeech, FieldMeaning, FieldMnemonic}

func (f Field) String() string {
	switch f {
	case FieldPhonetic:
		return "phonetic"
	case FieldPartOfSpeech:
		return "partOfSpeech"
	case FieldMeaning:
		return "meaning"
	case FieldMnemonic:
		return "mnemonic"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Label returns a human readable name for the field
func (f Field) Label() string {
	switch f {
	case FieldPhonetic:
		return "Phonetic"
	case FieldPartOfSpeech:
		return "Part of speech"
	case FieldMeaning:
		return "Meaning"
	case FieldMnemonic:
		return "Mnemonic"
	}
	return f.String()
}

// ParseField resolves a field name as used in config files and prompts
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "phonetic":
		return FieldPhonetic, nil
	case "pos", "partofspeech", "part-of-speech":
		return FieldPartOfSpeech, nil
	case "meaning":
		return FieldMeaning, nil
	case "mnemonic":
		return FieldMnemonic, nil
	}
	return 0, fmt.Errorf("unknown or read-only field %q", name)
}

// Get returns the value of an editable field
func (r Record) Get(f Field) string {
	switch f {
	case FieldPhonetic:
		return r.Phonetic
	case FieldPartOfSpeech:
		return r.PartOfSpeech
	case FieldMeaning:
		return r.Meaning
	case FieldMnemonic:
		return r.Mnemonic
	}
	return ""
}

func (r *Record) set(f Field, value string) {
	switch f {
	case FieldPhonetic:
		r.Phonetic = value
	case FieldPartOfSpeech:
		r.PartOfSpeech = value
	case FieldMeaning:
		r.Meaning = value
	case FieldMnemonic:
		r.Mnemonic = value
	}
}

// MissingFields returns the editable fields that are empty
func (r Record) MissingFields() []Field {
	var missing []Field
	for _, f := range EditableFields {
		if r.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

var valueReplacer = strings.NewReplacer("|", "/", "\r", " ", "\n", " ", "\t", " ")

// SanitizeValue makes a field value safe for the pipe separated line
// format: separators become "/" and whitespace runs collapse to one space.
func SanitizeValue(value string) string {
	return strings.Join(strings.Fields(valueReplacer.Replace(value)), " ")
}
