package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordcycle/internal"
	"codeberg.org/snonux/wordcycle/internal/anki"
	"codeberg.org/snonux/wordcycle/internal/archive"
	"codeberg.org/snonux/wordcycle/internal/cli"
	"codeberg.org/snonux/wordcycle/internal/enrich"
	"codeberg.org/snonux/wordcycle/internal/export"
	"codeberg.org/snonux/wordcycle/internal/gui"
	"codeberg.org/snonux/wordcycle/internal/logging"
	"codeberg.org/snonux/wordcycle/internal/models"
	"codeberg.org/snonux/wordcycle/internal/review"
	"codeberg.org/snonux/wordcycle/internal/tui"
	"codeberg.org/snonux/wordcycle/internal/words"
)

// Processor runs the mode selected on the command line
type Processor struct {
	flags *cli.Flags
	log   zerolog.Logger
	out   io.Writer
	now   func() time.Time

	newCompleter func(ctx context.Context, config *enrich.Config) (enrich.Completer, error)
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger zerolog.Logger) *Processor {
	return &Processor{
		flags:        flags,
		log:          logger,
		out:          os.Stdout,
		now:          time.Now,
		newCompleter: enrich.NewCompleter,
	}
}

// LoadSession creates a review session, optionally filled from a word file
func (p *Processor) LoadSession(path string) (*review.Session, error) {
	session := review.NewSession(logging.Component(p.log, "session"))

	if path != "" {
		store, err := words.ReadFile(path)
		if err != nil {
			return nil, err
		}
		session.Replace(store)
		p.log.Info().Str("file", path).Int("words", store.Len()).Msg("Word list loaded")
	}

	session.Cursor().SetLearnFavorites(!p.flags.NoLearnFavorites)
	return session, nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode(path string) error {
	session, err := p.LoadSession(path)
	if err != nil {
		return err
	}

	app := gui.New(session, &gui.Config{
		OutputDir: p.flags.OutputDir,
		FilePath:  path,
	}, logging.Component(p.log, "gui"))
	app.Run()

	return nil
}

// RunTUIMode reviews the word list in the terminal
func (p *Processor) RunTUIMode(path string) error {
	session, err := p.LoadSession(path)
	if err != nil {
		return err
	}

	return tui.Run(session, tui.Options{
		OutputDir: p.flags.OutputDir,
		FilePath:  path,
	}, logging.Component(p.log, "tui"))
}

// Enrich fills the empty fields of the word file and writes the result as a
// new snapshot, returning its path
func (p *Processor) Enrich(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--enrich needs a word file")
	}

	session, err := p.LoadSession(path)
	if err != nil {
		return "", err
	}
	if session.Empty() {
		return "", fmt.Errorf("%s: %w", path, review.ErrEmptyStore)
	}

	config := enrich.DefaultConfig()
	config.Provider = p.flags.EnrichProvider
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = p.flags.GeminiModel

	completer, err := p.newCompleter(ctx, config)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "Enriching %d words with %s...\n", session.Store().Len(), config.Provider)

	enricher := enrich.NewEnricher(completer, logging.Component(p.log, "enrich"))
	result, runErr := enricher.FillMissing(ctx, session.Store())
	fmt.Fprintf(p.out, "  %s\n", result)

	// Keep whatever was filled before an interruption
	if result.Fields == 0 {
		if runErr != nil {
			return "", runErr
		}
		fmt.Fprintln(p.out, "Nothing to save")
		return "", nil
	}

	outputPath, err := export.Save(p.flags.OutputDir, session, p.now())
	if err != nil {
		return "", err
	}
	if runErr != nil {
		return outputPath, fmt.Errorf("enrichment incomplete, partial result saved to %s: %w", outputPath, runErr)
	}
	return outputPath, nil
}

// GenerateAnkiFile generates the Anki import file and returns the output path
func (p *Processor) GenerateAnkiFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--anki needs a word file")
	}

	store, err := words.ReadFile(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(p.flags.OutputDir, "anki_import.csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     csvPath,
		IncludeHeaders: true,
	})
	gen.AddStore(store)

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = csvPath
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(p.flags.OutputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, learned, suspended := gen.Stats()
	fmt.Fprintf(p.out, "  Generated %d cards (%d learned, %d suspended as mastered)\n",
		total, learned, suspended)

	return outputPath, nil
}

// Archive moves the snapshots in the output directory aside
func (p *Processor) Archive() (string, error) {
	return archive.ArchiveExports(p.flags.OutputDir)
}

// ListModels prints the chat models usable for enrichment
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(cli.GetOpenAIKey()).ListAvailableModels(ctx, p.out)
}
