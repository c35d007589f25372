package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/wordcycle/internal/words"
)

const systemPrompt = "You are a lexicographer helping a language learner build flashcards. " +
	"Always answer with a single JSON object and nothing else."

// Result summarises an enrichment run
type Result struct {
	Records int // records that received at least one value
	Fields  int // individual fields filled
	Skipped int // records with nothing missing or no word
	Failed  int // records whose request or reply failed
}

func (r Result) String() string {
	return fmt.Sprintf("%d fields in %d records filled, %d skipped, %d failed",
		r.Fields, r.Records, r.Skipped, r.Failed)
}

// Enricher fills the empty fields of a word store through a Completer
type Enricher struct {
	completer Completer
	log       zerolog.Logger
	cache     map[string]map[string]string
}

// NewEnricher creates a new enricher
func NewEnricher(completer Completer, logger zerolog.Logger) *Enricher {
	return &Enricher{
		completer: completer,
		log:       logger,
		cache:     make(map[string]map[string]string),
	}
}

// FillMissing asks for the empty fields of each record in order and writes
// back only those fields. A failing record is logged and skipped; an open
// circuit breaker or a cancelled context ends the run.
func (e *Enricher) FillMissing(ctx context.Context, store *words.Store) (Result, error) {
	var result Result

	for i := 0; i < store.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, _ := store.Record(i)
		missing := record.MissingFields()
		if strings.TrimSpace(record.Word) == "" || len(missing) == 0 {
			result.Skipped++
			continue
		}

		values, err := e.lookup(ctx, record, missing)
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				return result, fmt.Errorf("enrichment stopped at %q: %w", record.Word, err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			e.log.Warn().Err(err).Str("word", record.Word).Msg("Enrichment failed")
			result.Failed++
			continue
		}

		filled := 0
		for _, field := range missing {
			value := words.SanitizeValue(values[field.String()])
			if value == "" {
				continue
			}
			if store.EditField(i, field, value) {
				filled++
			}
		}

		e.log.Debug().Str("word", record.Word).Int("fields", filled).Msg("Enriched")
		if filled > 0 {
			result.Records++
			result.Fields += filled
		}
	}

	return result, nil
}

// lookup returns the field values for a record, from cache when the same
// word was already asked for
func (e *Enricher) lookup(ctx context.Context, record words.Record, missing []words.Field) (map[string]string, error) {
	key := strings.ToLower(strings.TrimSpace(record.Word))
	if values, ok := e.cache[key]; ok && covers(values, missing) {
		return values, nil
	}

	reply, err := e.completer.Complete(ctx, BuildPrompt(record, missing))
	if err != nil {
		return nil, err
	}

	values, err := ParseReply(reply)
	if err != nil {
		return nil, err
	}

	if cached, ok := e.cache[key]; ok {
		for k, v := range cached {
			if _, exists := values[k]; !exists {
				values[k] = v
			}
		}
	}
	e.cache[key] = values
	return values, nil
}

func covers(values map[string]string, fields []words.Field) bool {
	for _, f := range fields {
		if _, ok := values[f.String()]; !ok {
			return false
		}
	}
	return true
}

// BuildPrompt asks for the missing fields of a record and shows the known
// ones as context
func BuildPrompt(record words.Record, missing []words.Field) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Word: %q\n", record.Word)
	for _, f := range words.EditableFields {
		if v := record.Get(f); v != "" {
			fmt.Fprintf(&sb, "%s: %s\n", f.Label(), v)
		}
	}

	keys := make([]string, len(missing))
	for i, f := range missing {
		keys[i] = fmt.Sprintf("%q", f.String())
	}

	sb.WriteString("\nReturn a JSON object with exactly these keys: ")
	sb.WriteString(strings.Join(keys, ", "))
	sb.WriteString(".\n")
	sb.WriteString("phonetic is the IPA transcription, partOfSpeech a short abbreviation " +
		"such as n., v. or adj., meaning a short definition and mnemonic a memorable " +
		"hint linking the word to its meaning. Keep every value on one line.")

	return sb.String()
}

// ParseReply decodes a JSON object reply. Code fences around the object are
// tolerated and non-string values are ignored.
func ParseReply(reply string) (map[string]string, error) {
	text := strings.TrimSpace(reply)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON reply: %w", err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			values[k] = s
		}
	}
	return values, nil
}
