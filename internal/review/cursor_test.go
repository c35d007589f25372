package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordcycle/internal/words"
)

// store builds a word list from flag triples: learned, favorited, mastered
func store(flags ...[3]bool) *words.Store {
	records := make([]words.Record, len(flags))
	for i, f := range flags {
		records[i] = words.Record{
			Word:      string(rune('a' + i)),
			Learned:   f[0],
			Favorited: f[1],
			Mastered:  f[2],
		}
	}
	return words.NewStore(records)
}

var (
	unlearned = [3]bool{false, false, false}
	learned   = [3]bool{true, false, false}
	favorite  = [3]bool{true, true, false}
	mastered  = [3]bool{false, false, true}
)

func position(t *testing.T, c *Cursor) (int, Stage) {
	t.Helper()
	idx, ok := c.Index()
	require.True(t, ok)
	return idx, c.Stage()
}

func TestNewCursor_StartsAtFirstEligible(t *testing.T) {
	c := NewCursor(store(learned, mastered, unlearned, unlearned))
	idx, stage := position(t, c)
	assert.Equal(t, 2, idx)
	assert.Equal(t, StageWord, stage)
	assert.True(t, c.LearnFavorites())
}

func TestNewCursor_NoEligibleDefaultsToZero(t *testing.T) {
	c := NewCursor(store(learned, mastered))
	idx, _ := position(t, c)
	assert.Equal(t, 0, idx)
	assert.False(t, c.HasEligible())
}

func TestReset_UsesDefaultLearnFavorites(t *testing.T) {
	c := NewCursor(store(unlearned))
	c.ToggleLearnFavorites()

	c.Reset(store(learned, favorite, unlearned))
	idx, stage := position(t, c)
	assert.Equal(t, 1, idx, "learned favorite counts as eligible for the start position")
	assert.Equal(t, StageWord, stage)
	assert.False(t, c.LearnFavorites(), "the toggle survives a reload")
}

func TestEmptyCursor(t *testing.T) {
	c := NewCursor(words.NewStore(nil))
	_, ok := c.Index()
	assert.False(t, ok)

	c.Advance()
	c.Advance()
	c.Advance()
	assert.Equal(t, StageWord, c.Stage())
	c.Retreat()
	assert.Equal(t, StageStatus, c.Stage())

	assert.False(t, c.ToggleLearnedIfOnStatus())
	assert.ErrorIs(t, c.JumpTo(1), ErrEmptyStore)
	assert.ErrorIs(t, c.JumpToText("1"), ErrEmptyStore)
	assert.Equal(t, Progress{}, c.Progress())
}

func TestAdvance_StageCycle(t *testing.T) {
	c := NewCursor(store(unlearned, unlearned))

	c.Advance()
	assert.Equal(t, StageDetails, c.Stage())
	c.Advance()
	assert.Equal(t, StageStatus, c.Stage())
	c.Advance()

	idx, stage := position(t, c)
	assert.Equal(t, 1, idx)
	assert.Equal(t, StageWord, stage)
}

func TestAdvance_SkipsIneligibleAndWraps(t *testing.T) {
	c := NewCursor(store(unlearned, learned, mastered, unlearned))
	require.NoError(t, c.JumpTo(4))

	c.Advance()
	c.Advance()
	c.Advance()

	idx, stage := position(t, c)
	assert.Equal(t, 0, idx, "wraps from the last index to the first eligible one")
	assert.Equal(t, StageWord, stage)

	c.Advance()
	c.Advance()
	c.Advance()
	idx, _ = position(t, c)
	assert.Equal(t, 3, idx)
}

func TestRetreat_StageCycle(t *testing.T) {
	c := NewCursor(store(unlearned, learned, unlearned))

	c.Retreat()
	idx, stage := position(t, c)
	assert.Equal(t, 2, idx, "wraps backwards past the ineligible word")
	assert.Equal(t, StageStatus, stage)

	c.Retreat()
	assert.Equal(t, StageDetails, c.Stage())
	c.Retreat()
	assert.Equal(t, StageWord, c.Stage())

	c.Retreat()
	idx, stage = position(t, c)
	assert.Equal(t, 0, idx)
	assert.Equal(t, StageStatus, stage)
}

func TestAdvanceRetreatSymmetry(t *testing.T) {
	c := NewCursor(store(unlearned, learned, unlearned))
	idx, _ := position(t, c)
	require.Equal(t, 0, idx)

	c.Advance()
	c.Advance()
	c.Advance()
	idx, stage := position(t, c)
	require.Equal(t, 2, idx)
	require.Equal(t, StageWord, stage)

	c.Retreat()
	c.Retreat()
	c.Retreat()
	idx, stage = position(t, c)
	assert.Equal(t, 0, idx)
	assert.Equal(t, StageWord, stage)
}

func TestAdvance_SingleEligibleStaysPut(t *testing.T) {
	c := NewCursor(store(learned, unlearned, learned))
	c.Advance()
	c.Advance()
	c.Advance()

	idx, stage := position(t, c)
	assert.Equal(t, 1, idx, "the only eligible word is found again after a full circle")
	assert.Equal(t, StageWord, stage)
}

func TestAdvance_MasteringLastEligibleWord(t *testing.T) {
	s := store(learned, unlearned, learned)
	c := NewCursor(s)
	c.Advance()
	c.Advance()

	idx, _ := position(t, c)
	require.True(t, s.ToggleMastered(idx))
	require.False(t, c.HasEligible())

	c.Advance()
	idx, stage := position(t, c)
	assert.Equal(t, 1, idx, "no eligible word: index unchanged")
	assert.Equal(t, StageWord, stage)

	c.Retreat()
	idx, stage = position(t, c)
	assert.Equal(t, 1, idx)
	assert.Equal(t, StageStatus, stage)
}

func TestToggleLearnedIfOnStatus(t *testing.T) {
	s := store(unlearned, unlearned)
	c := NewCursor(s)

	assert.False(t, c.ToggleLearnedIfOnStatus(), "no-op on Word")
	c.Advance()
	assert.False(t, c.ToggleLearnedIfOnStatus(), "no-op on Details")
	c.Advance()
	assert.True(t, c.ToggleLearnedIfOnStatus())

	r, _ := s.Record(0)
	assert.True(t, r.Learned)
	idx, stage := position(t, c)
	assert.Equal(t, 0, idx)
	assert.Equal(t, StageStatus, stage)
}

func TestJumpTo(t *testing.T) {
	c := NewCursor(store(unlearned, learned, mastered))
	c.Advance()

	assert.ErrorIs(t, c.JumpTo(0), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.JumpTo(4), ErrIndexOutOfRange)
	idx, stage := position(t, c)
	assert.Equal(t, 0, idx, "failed jump leaves the cursor alone")
	assert.Equal(t, StageDetails, stage)

	require.NoError(t, c.JumpTo(3))
	idx, stage = position(t, c)
	assert.Equal(t, 2, idx, "jump targets need not be eligible")
	assert.Equal(t, StageWord, stage)

	require.NoError(t, c.JumpTo(1))
	idx, stage = position(t, c)
	assert.Equal(t, 0, idx)
	assert.Equal(t, StageWord, stage)
}

func TestJumpToText(t *testing.T) {
	c := NewCursor(store(unlearned, unlearned, unlearned))

	tests := []struct {
		input   string
		wantErr error
		wantIdx int
	}{
		{" 2 ", nil, 1},
		{"3", nil, 2},
		{"abc", ErrIndexOutOfRange, 2},
		{"", ErrIndexOutOfRange, 2},
		{"1.5", ErrIndexOutOfRange, 2},
		{"-1", ErrIndexOutOfRange, 2},
		{"4", ErrIndexOutOfRange, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := c.JumpToText(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			idx, _ := position(t, c)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}

func TestToggleLearnFavorites_ChangesEligibilityOnly(t *testing.T) {
	c := NewCursor(store(unlearned, favorite, unlearned))
	c.Advance()

	assert.False(t, c.ToggleLearnFavorites())
	idx, stage := position(t, c)
	assert.Equal(t, 0, idx)
	assert.Equal(t, StageDetails, stage)

	c.Advance()
	c.Advance()
	idx, _ = position(t, c)
	assert.Equal(t, 2, idx, "the learned favorite is skipped")

	assert.True(t, c.ToggleLearnFavorites())
	c.Retreat()
	idx, _ = position(t, c)
	assert.Equal(t, 1, idx, "the learned favorite is back in the loop")
}

func TestProgress(t *testing.T) {
	c := NewCursor(store(unlearned, learned, unlearned, unlearned))
	require.NoError(t, c.JumpTo(3))

	p := c.Progress()
	assert.Equal(t, Progress{Position: 3, Total: 4, UnlearnedSeen: 2, UnlearnedTotal: 3}, p)
	assert.Equal(t, "3/4 (2/3)", p.String())
	assert.InDelta(t, 0.75, p.PositionRatio(), 1e-9)
	assert.InDelta(t, 2.0/3.0, p.UnlearnedRatio(), 1e-9)
}

func TestProgress_AllLearned(t *testing.T) {
	c := NewCursor(store(learned, learned))
	p := c.Progress()
	assert.Equal(t, "1/2 (0/0)", p.String())
	assert.Zero(t, p.UnlearnedRatio())
	assert.Equal(t, "0/0", Progress{}.String())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "word", StageWord.String())
	assert.Equal(t, "details", StageDetails.String())
	assert.Equal(t, "status", StageStatus.String())
	assert.Equal(t, "Stage(7)", Stage(7).String())
}
