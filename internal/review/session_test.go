package review

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordcycle/internal/words"
)

const sessionSample = "apple|ˈæpəl|n.|a round fruit|think of Adam's apple|1|0|0\n" +
	"run|rʌn|v.|move fast|legs|0|1|0\n" +
	"zeal|ziːl|n.|great energy|passion|0|0|0"

func newSession(t *testing.T, raw string) *Session {
	t.Helper()
	s := NewSession(zerolog.Nop())
	s.Load(raw)
	return s
}

func TestSession_EmptyBeforeLoad(t *testing.T) {
	s := NewSession(zerolog.Nop())
	assert.True(t, s.Empty())

	_, err := s.Export()
	assert.ErrorIs(t, err, ErrEmptyStore)
	assert.ErrorIs(t, s.Jump("1"), ErrEmptyStore)
	assert.False(t, s.ToggleFavorited())
	assert.False(t, s.ToggleMastered())
	assert.False(t, s.Edit(words.FieldMeaning, "x"))

	v := s.View()
	assert.False(t, v.Loaded)
	assert.Equal(t, "0/0", v.Progress.String())
}

func TestSession_LoadStartsAtFirstEligible(t *testing.T) {
	s := newSession(t, sessionSample)
	v := s.View()

	assert.True(t, v.Loaded)
	assert.False(t, v.AllDone)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, "run", v.Record.Word)
	assert.Equal(t, StageWord, v.Stage)
	assert.Equal(t, "2/3 (1/2)", v.Progress.String())
}

func TestSession_LoadReplacesContents(t *testing.T) {
	s := newSession(t, sessionSample)
	s.Next()
	s.Load("cat|kæt|n.|animal|petname|0|0|0")

	v := s.View()
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, StageWord, v.Stage)
	assert.Equal(t, 1, s.Store().Len())
}

func TestSession_ReviewLoop(t *testing.T) {
	s := newSession(t, sessionSample)

	s.Next()
	s.Next()
	require.Equal(t, StageStatus, s.View().Stage)
	require.True(t, s.ToggleLearned())

	s.Next()
	v := s.View()
	assert.Equal(t, "zeal", v.Record.Word)
	assert.Equal(t, StageWord, v.Stage)

	s.Next()
	s.Next()
	s.Next()
	v = s.View()
	assert.Equal(t, "run", v.Record.Word, "a learned favorite stays in the loop")

	s.ToggleLearnFavorites()
	for i := 0; i < 6; i++ {
		s.Next()
	}
	v = s.View()
	assert.Equal(t, "zeal", v.Record.Word, "run drops out once favorites are skipped")

	out, err := s.Export()
	require.NoError(t, err)
	assert.Contains(t, out, "run|rʌn|v.|move fast|legs|1|1|0")
}

func TestSession_TogglesKeepPosition(t *testing.T) {
	s := newSession(t, sessionSample)
	s.Next()

	assert.True(t, s.ToggleMastered())
	assert.True(t, s.ToggleFavorited())

	v := s.View()
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, StageDetails, v.Stage)
	assert.True(t, v.Record.Mastered)
	assert.False(t, v.Record.Favorited)
}

func TestSession_AllDone(t *testing.T) {
	s := newSession(t, "a|||||1|0|0\nb|||||0|0|1")
	v := s.View()
	assert.True(t, v.Loaded)
	assert.True(t, v.AllDone)
	assert.Equal(t, 0, v.Index)
}

func TestSession_LearnFavorites(t *testing.T) {
	s := newSession(t, "a|||||1|1|0")
	assert.False(t, s.View().AllDone)

	assert.False(t, s.ToggleLearnFavorites())
	v := s.View()
	assert.True(t, v.AllDone)
	assert.False(t, v.LearnFavorites)
}

func TestSession_EditAndJump(t *testing.T) {
	s := newSession(t, sessionSample)

	require.NoError(t, s.Jump("3"))
	assert.True(t, s.Edit(words.FieldMnemonic, "zeal sounds like deal"))
	assert.False(t, s.Edit(words.FieldMnemonic, "zeal sounds like deal"))
	assert.Equal(t, "zeal sounds like deal", s.View().Record.Mnemonic)

	err := s.Jump("9")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 2, s.View().Index)
}
