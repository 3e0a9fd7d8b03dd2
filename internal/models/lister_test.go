package models

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sashabaranov/go-openai"
)

func newModelsServer(t *testing.T, ids ...string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		var list openai.ModelsList
		for _, id := range ids {
			list.Models = append(list.Models, openai.Model{ID: id, Object: "model"})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatModels(t *testing.T) {
	srv := newModelsServer(t, "gpt-4o-mini", "tts-1", "dall-e-3", "gpt-4o-audio-preview", "gpt-4o", "whisper-1", "chatgpt-4o-latest", "gpt-image-1")
	lister := NewLister("test-api-key", srv.URL+"/v1")

	got, err := lister.ChatModels(t.Context())
	if err != nil {
		t.Fatalf("ChatModels failed: %v", err)
	}

	want := []string{"chatgpt-4o-latest", "gpt-4o", "gpt-4o-mini"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChatModels() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint(t *testing.T) {
	srv := newModelsServer(t, "gpt-4o-mini", "gpt-4o")
	lister := NewLister("test-api-key", srv.URL+"/v1")

	var buf bytes.Buffer
	if err := lister.Print(t.Context(), &buf, "gpt-4o-mini"); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Model") || !strings.Contains(out, "gpt-4o") {
		t.Errorf("unexpected output:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "gpt-4o-mini") && !strings.Contains(line, "*") {
			t.Errorf("configured model not marked: %q", line)
		}
	}
}

func TestChatModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	_, err := lister.ChatModels(t.Context())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !strings.HasPrefix(err.Error(), "OpenAI API key not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestChatModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	models, err := NewLister(apiKey, "").ChatModels(t.Context())
	if err != nil {
		t.Errorf("ChatModels failed: %v", err)
	}
	t.Logf("Found %d chat models", len(models))
}
