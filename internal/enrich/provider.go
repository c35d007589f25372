package enrich

import (
	"context"
	"fmt"
	"time"
)

// Completer sends a single prompt to an LLM and returns its raw reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures the completion provider
type Config struct {
	Provider string // "openai" or "gemini"

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string

	// Circuit breaker settings
	MaxFailures  uint32
	OpenDuration time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:     "openai",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
		MaxFailures:  3,
		OpenDuration: 30 * time.Second,
	}
}

// NewCompleter creates the configured provider wrapped in a circuit breaker
func NewCompleter(ctx context.Context, config *Config) (Completer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var provider Completer
	switch config.Provider {
	case "openai", "":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		provider = NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		p, err := NewGeminiProvider(ctx, config.GeminiKey, config.GeminiModel)
		if err != nil {
			return nil, err
		}
		provider = p

	default:
		return nil, fmt.Errorf("unknown enrichment provider: %s", config.Provider)
	}

	return NewBreaker(config.Provider, provider, config.MaxFailures, config.OpenDuration), nil
}
