package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordcycle/internal"
)

// flagKeys maps flag names to their viper configuration keys
var flagKeys = map[string]string{
	"output":             "output.directory",
	"deck-name":          "anki.deck_name",
	"enrich-provider":    "enrich.provider",
	"openai-model":       "enrich.openai_model",
	"gemini-model":       "enrich.gemini_model",
	"no-learn-favorites": "review.no_learn_favorites",
	"log-level":          "log.level",
	"log-file":           "log.file",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordcycle [file]",
		Short: "Vocabulary flashcard reviewer",
		Long: `wordcycle reviews a vocabulary list one card at a time.

Each word is shown first on its own, then with its phonetic spelling,
part of speech, meaning and mnemonic, and finally with its learned
status. Learned and mastered words drop out of the review loop.

Word files have one word per line with pipe separated fields:
  word|phonetic|part of speech|meaning|mnemonic|learned|favorited|mastered

Examples:
  wordcycle                          # Launch the GUI (default)
  wordcycle words.txt                # Open words.txt in the GUI
  wordcycle --tui words.txt          # Review in the terminal
  wordcycle --enrich words.txt       # Fill empty fields with an LLM
  wordcycle --anki words.txt         # Export an Anki package`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordcycle.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Directory for word list snapshots and Anki decks")
	cmd.Flags().BoolVar(&flags.TUIMode, "tui", false, "Review in the terminal instead of the GUI")
	cmd.Flags().BoolVar(&flags.NoLearnFavorites, "no-learn-favorites", false, "Skip learned favorites when reviewing")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move existing snapshots into a timestamped archive directory")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models available for --enrich")

	// Anki flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// Enrichment flags
	cmd.Flags().BoolVar(&flags.Enrich, "enrich", false, "Fill empty phonetic, part of speech, meaning and mnemonic fields")
	cmd.Flags().StringVar(&flags.EnrichProvider, "enrich-provider", flags.EnrichProvider, "Enrichment provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for enrichment")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for enrichment")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Write logs to this file (terminal mode defaults to the state directory)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range flagKeys {
		viper.BindPFlag(key, cmd.Flags().Lookup(name))
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordcycle" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordcycle")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDCYCLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies configured values into every flag the user did not
// set explicitly on the command line
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	str := func(name string, dst *string) {
		if !cmd.Flags().Changed(name) && viper.IsSet(flagKeys[name]) {
			*dst = viper.GetString(flagKeys[name])
		}
	}

	str("output", &flags.OutputDir)
	str("deck-name", &flags.DeckName)
	str("enrich-provider", &flags.EnrichProvider)
	str("openai-model", &flags.OpenAIModel)
	str("gemini-model", &flags.GeminiModel)
	str("log-level", &flags.LogLevel)
	str("log-file", &flags.LogFile)

	if !cmd.Flags().Changed("no-learn-favorites") && viper.IsSet(flagKeys["no-learn-favorites"]) {
		flags.NoLearnFavorites = viper.GetBool(flagKeys["no-learn-favorites"])
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("enrich.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	return viper.GetString("enrich.gemini_key")
}
