package review

import "codeberg.org/snonux/wordcycle/internal/words"

// Eligible reports whether r belongs in the review loop. Mastered words
// never do; unlearned words always do; learned words only when favorited
// and learnFavorites is on.
func Eligible(r words.Record, learnFavorites bool) bool {
	if r.Mastered {
		return false
	}
	if !r.Learned {
		return true
	}
	if r.Favorited {
		return learnFavorites
	}
	return false
}
