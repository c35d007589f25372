package review

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/snonux/wordcycle/internal/words"
)

// Cursor tracks the displayed word and its stage. It reads the store for
// eligibility and only writes to it through ToggleLearnedIfOnStatus.
type Cursor struct {
	store          *words.Store
	index          int
	stage          Stage
	learnFavorites bool
}

// NewCursor creates a cursor over store positioned at its first eligible word
func NewCursor(store *words.Store) *Cursor {
	c := &Cursor{learnFavorites: true}
	c.Reset(store)
	return c
}

// Reset points the cursor at a freshly loaded store. The start position is
// the first word eligible with learn-favorites on, or 0 if none is.
func (c *Cursor) Reset(store *words.Store) {
	if store == nil {
		store = words.NewStore(nil)
	}
	c.store = store
	c.index = 0
	c.stage = StageWord

	for i := 0; i < store.Len(); i++ {
		r, _ := store.Record(i)
		if Eligible(r, true) {
			c.index = i
			break
		}
	}
}

// Index returns the current 0-based index; ok is false for an empty store
func (c *Cursor) Index() (int, bool) {
	if c.store.Len() == 0 {
		return 0, false
	}
	return c.index, true
}

// Stage returns the current view stage
func (c *Cursor) Stage() Stage {
	return c.stage
}

// LearnFavorites reports whether learned favorites stay in the loop
func (c *Cursor) LearnFavorites() bool {
	return c.learnFavorites
}

// Current returns the record under the cursor
func (c *Cursor) Current() (words.Record, bool) {
	return c.store.Record(c.index)
}

// Eligible applies the eligibility rule with the cursor's learn-favorites setting
func (c *Cursor) Eligible(r words.Record) bool {
	return Eligible(r, c.learnFavorites)
}

// HasEligible reports whether any word is currently in the loop
func (c *Cursor) HasEligible() bool {
	for i := 0; i < c.store.Len(); i++ {
		if r, _ := c.store.Record(i); c.Eligible(r) {
			return true
		}
	}
	return false
}

// Advance moves one step forward: Word -> Details -> Status -> next
// eligible word at stage Word. When no word is eligible the index stays
// put and only the stage wraps to Word.
func (c *Cursor) Advance() {
	switch c.stage {
	case StageWord:
		c.stage = StageDetails
	case StageDetails:
		c.stage = StageStatus
	default:
		if next, ok := c.scan(1); ok {
			c.index = next
		}
		c.stage = StageWord
	}
}

// Retreat mirrors Advance: Status -> Details -> Word -> previous eligible
// word at stage Status, with the same fallback when none is eligible.
func (c *Cursor) Retreat() {
	switch c.stage {
	case StageStatus:
		c.stage = StageDetails
	case StageDetails:
		c.stage = StageWord
	default:
		if prev, ok := c.scan(-1); ok {
			c.index = prev
		}
		c.stage = StageStatus
	}
}

// scan probes at most n indices circularly in direction step (+1 or -1),
// starting just past the current index, and returns the first eligible one.
func (c *Cursor) scan(step int) (int, bool) {
	n := c.store.Len()
	for i := 1; i <= n; i++ {
		candidate := ((c.index+step*i)%n + n) % n
		if r, _ := c.store.Record(candidate); c.Eligible(r) {
			return candidate, true
		}
	}
	return c.index, false
}

// ToggleLearnedIfOnStatus flips the learned flag of the current word, but
// only while the Status stage is shown. It reports whether anything changed.
func (c *Cursor) ToggleLearnedIfOnStatus() bool {
	if c.stage != StageStatus {
		return false
	}
	return c.store.ToggleLearned(c.index)
}

// JumpTo moves to a 1-based index and shows its word. The target does not
// have to be eligible. On error the cursor is unchanged.
func (c *Cursor) JumpTo(oneBased int) error {
	n := c.store.Len()
	if n == 0 {
		return ErrEmptyStore
	}
	if oneBased < 1 || oneBased > n {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrIndexOutOfRange, oneBased, n)
	}
	c.index = oneBased - 1
	c.stage = StageWord
	return nil
}

// JumpToText parses a 1-based index typed by the user and jumps to it
func (c *Cursor) JumpToText(text string) error {
	n := c.store.Len()
	if n == 0 {
		return ErrEmptyStore
	}
	target, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number between 1 and %d", ErrIndexOutOfRange, text, n)
	}
	return c.JumpTo(target)
}

// ToggleLearnFavorites flips whether learned favorites stay in the loop.
// Position and stage are untouched. It returns the new setting.
func (c *Cursor) ToggleLearnFavorites() bool {
	c.learnFavorites = !c.learnFavorites
	return c.learnFavorites
}

// SetLearnFavorites sets the learn-favorites flag
func (c *Cursor) SetLearnFavorites(on bool) {
	c.learnFavorites = on
}

// Progress computes the position and unlearned-word ratios
func (c *Cursor) Progress() Progress {
	n := c.store.Len()
	if n == 0 {
		return Progress{}
	}
	return Progress{
		Position:       c.index + 1,
		Total:          n,
		UnlearnedSeen:  c.store.UnlearnedThrough(c.index),
		UnlearnedTotal: c.store.UnlearnedCount(),
	}
}
