package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels writes the chat models usable for enrichment to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .wordcycle.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	chat, skipped := ChatModels(ids)

	fmt.Fprintln(w, "Available OpenAI chat models (for --enrich):")
	if len(chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, model := range chat {
		fmt.Fprintf(w, "  %s\n", model)
	}
	if skipped > 0 {
		fmt.Fprintf(w, "  ... and %d non-chat models\n", skipped)
	}

	return nil
}

// ChatModels filters and sorts the model IDs that accept chat completions.
// Audio, speech, image, embedding and moderation variants are excluded.
func ChatModels(ids []string) (chat []string, skipped int) {
	excluded := []string{"tts", "audio", "realtime", "transcribe", "search", "dall-e", "image", "embedding", "moderation", "whisper"}

	for _, id := range ids {
		if !strings.HasPrefix(id, "gpt-") && !strings.HasPrefix(id, "o1") &&
			!strings.HasPrefix(id, "o3") && !strings.HasPrefix(id, "o4") &&
			!strings.Contains(id, "chat") {
			skipped++
			continue
		}

		usable := true
		for _, marker := range excluded {
			if strings.Contains(id, marker) {
				usable = false
				break
			}
		}
		if !usable {
			skipped++
			continue
		}
		chat = append(chat, id)
	}

	sort.Strings(chat)
	return chat, skipped
}
