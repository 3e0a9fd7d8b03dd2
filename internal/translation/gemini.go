package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// GeminiTranslator translates with a Google Gemini model.
type GeminiTranslator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTranslator creates a Gemini API client
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini %w", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiTranslator{client: client, model: model, timeout: config.Timeout}, nil
}

// Name returns the provider name
func (t *GeminiTranslator) Name() string {
	return "gemini"
}

// Translate translates text from source into the other language
func (t *GeminiTranslator) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt(source), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
