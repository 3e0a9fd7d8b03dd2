package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rodaine/table"
	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. baseURL may be empty for the
// public API.
func NewLister(apiKey, baseURL string) *Lister {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// ChatModels returns the sorted IDs of all gpt and chat models, skipping
// audio, speech and image variants.
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure translation.openai_key in .bilingo.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chat []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "realtime") || strings.Contains(id, "image") ||
			strings.Contains(id, "transcribe") {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") {
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)

	return chat, nil
}

// Print writes the chat models as a table, marking the configured one.
func (l *Lister) Print(ctx context.Context, w io.Writer, current string) error {
	models, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat models usable for translation:")
	if len(models) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}

	tbl := table.New("Model", "Configured").WithWriter(w)
	for _, m := range models {
		mark := ""
		if m == current {
			mark = "*"
		}
		tbl.AddRow(m, mark)
	}
	tbl.Print()

	return nil
}
