package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// DefaultMyMemoryURL is the public MyMemory endpoint.
const DefaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryTranslator uses the free MyMemory translation memory API. It needs
// no key; an email raises the daily quota.
type MyMemoryTranslator struct {
	endpoint string
	email    string
	client   *http.Client
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	// The API sends the status as a number or as a quoted number.
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

// NewMyMemoryTranslator creates a MyMemory client
func NewMyMemoryTranslator(config *Config) *MyMemoryTranslator {
	endpoint := config.MyMemoryURL
	if endpoint == "" {
		endpoint = DefaultMyMemoryURL
	}
	return &MyMemoryTranslator{
		endpoint: endpoint,
		email:    config.MyMemoryEmail,
		client:   &http.Client{Timeout: config.Timeout},
	}
}

// Name returns the provider name
func (t *MyMemoryTranslator) Name() string {
	return "mymemory"
}

// Translate translates text from source into the other language
func (t *MyMemoryTranslator) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", langCode(source)+"|"+langCode(source.Target()))
	if t.email != "" {
		params.Set("de", t.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create MyMemory request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("MyMemory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("MyMemory returned HTTP %d", resp.StatusCode)
	}

	var data myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode MyMemory response: %w", err)
	}

	if data.ResponseStatus.String() != "200" {
		return "", fmt.Errorf("MyMemory error %s: %s", data.ResponseStatus, data.ResponseDetails)
	}

	translation := strings.TrimSpace(data.ResponseData.TranslatedText)
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}

func langCode(l lang.Lang) string {
	if l == lang.Chinese {
		return "zh-CN"
	}
	return string(l)
}
