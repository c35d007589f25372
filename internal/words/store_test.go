package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "apple|ˈæpəl|n.|a round fruit|think of Adam's apple|1|0|0\n" +
	"run|rʌn|v.|move fast|legs|0|1|0\n" +
	"zeal|ziːl|n.|great energy|zeal = deal with passion|1|1|1"

func TestLoad(t *testing.T) {
	s := Load(sample)
	require.Equal(t, 3, s.Len())

	r, ok := s.Record(0)
	require.True(t, ok)
	assert.Equal(t, Record{
		Word:         "apple",
		Phonetic:     "ˈæpəl",
		PartOfSpeech: "n.",
		Meaning:      "a round fruit",
		Mnemonic:     "think of Adam's apple",
		Learned:      true,
	}, r)

	r, _ = s.Record(2)
	assert.True(t, r.Learned)
	assert.True(t, r.Favorited)
	assert.True(t, r.Mastered)
}

func TestLoad_StripsTabs(t *testing.T) {
	s := Load("cat|kæt|n.|animal|pet\tname\n")
	require.Equal(t, 1, s.Len())

	r, _ := s.Record(0)
	assert.Equal(t, "petname", r.Mnemonic)
	assert.False(t, r.Learned)
	assert.False(t, r.Favorited)
	assert.False(t, r.Mastered)
}

func TestLoad_Lenient(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Record
	}{
		{"word only", "hello", Record{Word: "hello"}},
		{"flag other than 1", "a|||||yes|true|2", Record{Word: "a"}},
		{"extra fields ignored", "a|b|c|d|e|1|1|0|extra|more", Record{Word: "a", Phonetic: "b", PartOfSpeech: "c", Meaning: "d", Mnemonic: "e", Learned: true, Favorited: true}},
		{"crlf line ending", "a|||||0|0|1\r", Record{Word: "a", Mastered: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load(tt.raw)
			require.Equal(t, 1, s.Len())
			r, _ := s.Record(0)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	assert.Equal(t, 0, Load("").Len())
	assert.Equal(t, 0, Load(" \n\t\n").Len())
}

func TestLoad_KeepsInteriorBlankLines(t *testing.T) {
	s := Load("a|||||0|0|0\n\nb|||||0|0|0")
	require.Equal(t, 3, s.Len())
	r, _ := s.Record(1)
	assert.Equal(t, Record{}, r)
}

func TestSerialize_RoundTrip(t *testing.T) {
	canonical := []string{
		sample,
		"cat|kæt|n.|animal|petname|0|0|0",
		"a|||||0|0|0\n|||||0|0|0\nb|x|y|z|w|1|1|1",
	}

	for _, text := range canonical {
		assert.Equal(t, text, Load(text).Serialize())
	}
}

func TestSerialize_IsInverseOfLoad(t *testing.T) {
	raw := "cat|kæt\ndog|dɔg|n.|animal||1\n\tfox|||||0|0|1|junk\n"
	first := Load(raw)
	second := Load(first.Serialize())
	assert.Equal(t, first.Records(), second.Records())
}

func TestEditField(t *testing.T) {
	s := Load(sample)

	assert.True(t, s.EditField(1, FieldMeaning, "move quickly"))
	r, _ := s.Record(1)
	assert.Equal(t, "move quickly", r.Meaning)

	assert.False(t, s.EditField(1, FieldMeaning, "move quickly"), "unchanged value is a no-op")
	assert.False(t, s.EditField(-1, FieldMeaning, "x"))
	assert.False(t, s.EditField(3, FieldMeaning, "x"))
	assert.False(t, Load("").EditField(0, FieldPhonetic, "x"))
}

func TestToggles(t *testing.T) {
	s := Load(sample)

	require.True(t, s.ToggleLearned(0))
	require.True(t, s.ToggleFavorited(0))
	require.True(t, s.ToggleMastered(0))

	r, _ := s.Record(0)
	assert.False(t, r.Learned)
	assert.True(t, r.Favorited)
	assert.True(t, r.Mastered)

	empty := Load("")
	assert.False(t, empty.ToggleLearned(0))
	assert.False(t, empty.ToggleFavorited(0))
	assert.False(t, empty.ToggleMastered(0))
}

func TestUnlearnedCounts(t *testing.T) {
	s := Load(sample)
	assert.Equal(t, 1, s.UnlearnedCount())
	assert.Equal(t, 0, s.UnlearnedThrough(0))
	assert.Equal(t, 1, s.UnlearnedThrough(1))
	assert.Equal(t, 1, s.UnlearnedThrough(10))
	assert.Equal(t, 0, Load("").UnlearnedCount())
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := Load(sample)
	records := s.Records()
	records[0].Word = "changed"

	r, _ := s.Record(0)
	assert.Equal(t, "apple", r.Word)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
