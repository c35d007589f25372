package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if !strings.Contains(err.Error(), "OpenAI API key not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestChatModels(t *testing.T) {
	ids := []string{
		"gpt-4o-mini",
		"tts-1",
		"gpt-4o-mini-tts",
		"dall-e-3",
		"gpt-4o",
		"text-embedding-3-small",
		"o3-mini",
		"gpt-4o-realtime-preview",
		"chatgpt-4o-latest",
	}

	chat, skipped := ChatModels(ids)

	want := []string{"chatgpt-4o-latest", "gpt-4o", "gpt-4o-mini", "o3-mini"}
	if strings.Join(chat, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, chat)
	}
	if skipped != 5 {
		t.Errorf("Expected 5 skipped models, got %d", skipped)
	}
}

func TestListAvailableModels_FakeServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o-mini","object":"model"},{"id":"tts-1","object":"model"}]}`))
	}))
	defer server.Close()

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	lister := NewLister("test-key")
	lister.client = openai.NewClientWithConfig(config)

	var out bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "  gpt-4o-mini\n") {
		t.Errorf("Expected gpt-4o-mini in output, got:\n%s", got)
	}
	if !strings.Contains(got, "... and 1 non-chat models") {
		t.Errorf("Expected skipped count in output, got:\n%s", got)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var out bytes.Buffer
	if err := NewLister(apiKey).ListAvailableModels(context.Background(), &out); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
