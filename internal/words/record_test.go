package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		want Field
	}{
		{"phonetic", FieldPhonetic},
		{"pos", FieldPartOfSpeech},
		{"partOfSpeech", FieldPartOfSpeech},
		{" Meaning ", FieldMeaning},
		{"mnemonic", FieldMnemonic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseField("word")
	assert.Error(t, err, "the word itself is not editable")
}

func TestMissingFields(t *testing.T) {
	r := Record{Word: "run", Meaning: "move fast"}
	assert.Equal(t, []Field{FieldPhonetic, FieldPartOfSpeech, FieldMnemonic}, r.MissingFields())

	full := Record{Word: "x", Phonetic: "a", PartOfSpeech: "b", Meaning: "c", Mnemonic: "d"}
	assert.Empty(t, full.MissingFields())
}

func TestSanitizeValue(t *testing.T) {
	assert.Equal(t, "a / b c", SanitizeValue(" a | b\n c "))
	assert.Equal(t, "", SanitizeValue("\t\r\n"))
	assert.Equal(t, "ˈluːsɪd", SanitizeValue("ˈluːsɪd"))

	store := Load("x|" + SanitizeValue("p|q") + "||||0|0|0")
	rec, ok := store.Record(0)
	require.True(t, ok)
	assert.Equal(t, "p/q", rec.Phonetic)
}
