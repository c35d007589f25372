package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("chatty", "")
	require.Error(t, err)
	closer()
}

func TestNew_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "wordcycle.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)

	Component(l, "review").Info().Str("word", "apple").Msg("loaded")
	l.Debug().Msg("filtered out")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"cmp":"review"`)
	assert.Contains(t, out, `"word":"apple"`)
	assert.False(t, strings.Contains(out, "filtered out"))
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
