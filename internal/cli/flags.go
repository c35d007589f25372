package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile          string
	OutputDir        string
	TUIMode          bool
	NoLearnFavorites bool
	Archive          bool
	ListModels       bool

	// Anki flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// Enrichment flags
	Enrich         bool
	EnrichProvider string
	OpenAIModel    string
	GeminiModel    string

	// Logging flags
	LogLevel string
	LogFile  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:      DefaultOutputDir(),
		DeckName:       "Vocabulary",
		EnrichProvider: "openai",
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
		LogLevel:       "info",
	}
}

// DefaultStateDir returns ~/.local/state/wordcycle
func DefaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "wordcycle")
}

// DefaultOutputDir is where snapshots and decks are written
func DefaultOutputDir() string {
	return filepath.Join(DefaultStateDir(), "exports")
}

// DefaultLogFile is used in terminal mode when no log file is configured
func DefaultLogFile() string {
	return filepath.Join(DefaultStateDir(), "wordcycle.log")
}
