package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockCompleter is a scripted LLM completer. Replies are matched by the
// first key contained in the prompt; Errors take precedence.
type MockCompleter struct {
	Replies map[string]string
	Errors  map[string]error

	mu    sync.Mutex
	Calls []string
}

// Complete implements enrich.Completer
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, prompt)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for key, err := range m.Errors {
		if strings.Contains(prompt, key) {
			return "", err
		}
	}

	for key, reply := range m.Replies {
		if strings.Contains(prompt, key) {
			return reply, nil
		}
	}

	return "", fmt.Errorf("no scripted reply for prompt")
}

// CallCount returns the number of Complete calls
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
