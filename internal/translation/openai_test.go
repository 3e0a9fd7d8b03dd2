package translation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/bilingo/internal/lang"
)

func newOpenAIServer(t *testing.T, status int, content string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testOpenAI(t *testing.T, baseURL string) *OpenAITranslator {
	t.Helper()
	tr, err := NewOpenAITranslator(&Config{
		OpenAIKey:     "test-api-key",
		OpenAIModel:   "gpt-4o-mini",
		OpenAIBaseURL: baseURL + "/v1",
		Timeout:       5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewOpenAITranslator failed: %v", err)
	}
	return tr
}

func TestNewOpenAITranslator_NoAPIKey(t *testing.T) {
	_, err := NewOpenAITranslator(&Config{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Expected ErrMissingAPIKey, got: %v", err)
	}
	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestOpenAITranslate(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := newOpenAIServer(t, http.StatusOK, "  I love learning \n", &req)
	tr := testOpenAI(t, srv.URL)

	got, err := tr.Translate(t.Context(), "我爱学习", lang.Chinese)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "I love learning" {
		t.Errorf("Translate() = %q, want trimmed translation", got)
	}

	if req.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", req.Model)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system and user message, got %d", len(req.Messages))
	}
	system := req.Messages[0].Content
	if !strings.Contains(system, "Simplified Chinese text into English") {
		t.Errorf("system prompt does not name the direction: %q", system)
	}
	if req.Messages[1].Content != "我爱学习" {
		t.Errorf("user message = %q", req.Messages[1].Content)
	}
}

func TestOpenAITranslate_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := newOpenAIServer(t, http.StatusInternalServerError, "", nil)
		if _, err := testOpenAI(t, srv.URL).Translate(t.Context(), "hello", lang.English); err == nil {
			t.Error("Expected error for HTTP 500")
		}
	})

	t.Run("empty content", func(t *testing.T) {
		srv := newOpenAIServer(t, http.StatusOK, "   ", nil)
		_, err := testOpenAI(t, srv.URL).Translate(t.Context(), "hello", lang.English)
		if !errors.Is(err, ErrEmptyTranslation) {
			t.Errorf("Expected ErrEmptyTranslation, got %v", err)
		}
	})
}

func TestOpenAITranslate_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	cfg := DefaultConfig()
	cfg.OpenAIKey = apiKey
	tr, err := NewOpenAITranslator(cfg)
	if err != nil {
		t.Fatalf("NewOpenAITranslator failed: %v", err)
	}

	translation, err := tr.Translate(t.Context(), "我爱学习", lang.Chinese)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of '我爱学习': %s", translation)
}
