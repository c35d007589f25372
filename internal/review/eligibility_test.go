package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/snonux/wordcycle/internal/words"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name           string
		record         words.Record
		learnFavorites bool
		want           bool
	}{
		{"unlearned", words.Record{}, true, true},
		{"unlearned favorited", words.Record{Favorited: true}, false, true},
		{"learned", words.Record{Learned: true}, true, false},
		{"learned favorite, learning favorites", words.Record{Learned: true, Favorited: true}, true, true},
		{"learned favorite, skipping favorites", words.Record{Learned: true, Favorited: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.record, tt.learnFavorites))
		})
	}
}

func TestEligible_MasteredNeverEligible(t *testing.T) {
	for _, learned := range []bool{false, true} {
		for _, favorited := range []bool{false, true} {
			for _, learnFavorites := range []bool{false, true} {
				r := words.Record{Learned: learned, Favorited: favorited, Mastered: true}
				assert.False(t, Eligible(r, learnFavorites), "%+v learnFavorites=%v", r, learnFavorites)
			}
		}
	}
}
