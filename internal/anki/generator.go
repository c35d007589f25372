package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/wordcycle/internal/words"
)

// Card represents a single Anki note built from a word record
type Card struct {
	Word         string   // Front side
	Phonetic     string   // IPA or other transcription
	PartOfSpeech string   // n., v., adj. ...
	Meaning      string   // Definition or translation
	Mnemonic     string   // Memory aid
	Tags         []string // learned, favorited, mastered
	Suspended    bool     // Mastered words are imported suspended
}

// CardFromRecord converts a word record into a card
func CardFromRecord(r words.Record) Card {
	card := Card{
		Word:         r.Word,
		Phonetic:     r.Phonetic,
		PartOfSpeech: r.PartOfSpeech,
		Meaning:      r.Meaning,
		Mnemonic:     r.Mnemonic,
		Suspended:    r.Mastered,
	}
	if r.Learned {
		card.Tags = append(card.Tags, "learned")
	}
	if r.Favorited {
		card.Tags = append(card.Tags, "favorited")
	}
	if r.Mastered {
		card.Tags = append(card.Tags, "mastered")
	}
	return card
}

// CardsFromStore converts every record with a non-empty word into a card
func CardsFromStore(store *words.Store) []Card {
	cards := make([]Card, 0, store.Len())
	for _, r := range store.Records() {
		if strings.TrimSpace(r.Word) == "" {
			continue
		}
		cards = append(cards, CardFromRecord(r))
	}
	return cards
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible CSV import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddStore adds a card for every usable record of store
func (g *Generator) AddStore(store *words.Store) {
	g.cards = append(g.cards, CardsFromStore(store)...)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{"Word", "Phonetic", "PartOfSpeech", "Meaning", "Mnemonic", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Word,
			card.Phonetic,
			card.PartOfSpeech,
			card.Meaning,
			card.Mnemonic,
			strings.Join(card.Tags, " "),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, learned, suspended int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		for _, tag := range card.Tags {
			if tag == "learned" {
				learned++
			}
		}
		if card.Suspended {
			suspended++
		}
	}

	return
}
