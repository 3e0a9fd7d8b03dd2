package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/lang"
)

const maxBodyBytes = 1 << 20

// Service is what the handlers need from the annotator.
type Service interface {
	Ready() bool
	Translate(ctx context.Context, text string, source lang.Lang) (string, error)
	Lookup(word string) (dictionary.Entry, bool)
	Annotate(ctx context.Context, text string, source lang.Lang) annotator.Result
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
}

type translateResponse struct {
	Success      bool      `json:"success"`
	OriginalText string    `json:"original_text"`
	Translation  string    `json:"translation"`
	SourceLang   lang.Lang `json:"source_lang"`
}

type annotateResponse struct {
	Success         bool                        `json:"success"`
	Error           string                      `json:"error,omitempty"`
	OriginalText    string                      `json:"original_text"`
	Translation     string                      `json:"translation"`
	SourceLang      lang.Lang                   `json:"source_lang"`
	Examples        map[string][]string         `json:"examples"`
	WordDefinitions map[string]dictionary.Entry `json:"word_definitions"`
}

type dictionaryResponse struct {
	Success       bool     `json:"success"`
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation"`
	Chinese       string   `json:"chinese"`
	Definitions   []string `json:"definitions"`
	Examples      []string `json:"examples"`
}

type healthResponse struct {
	Status          string `json:"status"`
	TranslatorReady bool   `json:"translator_ready"`
}

type handlers struct {
	svc      Service
	detector lang.Detector
	logger   *zap.Logger
}

var errTextRequired = errors.New("text is required")

// decode reads the request body and resolves the source language.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request) (string, lang.Lang, error) {
	var req translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return "", "", fmt.Errorf("invalid JSON body: %w", err)
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", "", errTextRequired
	}

	switch strings.ToLower(strings.TrimSpace(req.SourceLang)) {
	case "":
		return text, lang.Chinese, nil
	case "auto":
		return text, h.detector.Detect(text), nil
	}

	source, err := lang.Parse(req.SourceLang)
	if err != nil {
		return "", "", fmt.Errorf("invalid source_lang: %w", err)
	}
	return text, source, nil
}

func (h *handlers) translate(w http.ResponseWriter, r *http.Request) {
	text, source, err := h.decode(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.svc.Ready() {
		writeError(w, http.StatusServiceUnavailable, "translator not ready")
		return
	}

	translation, err := h.svc.Translate(r.Context(), text, source)
	if err != nil {
		h.logger.Warn("translation failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "translation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Success:      true,
		OriginalText: text,
		Translation:  translation,
		SourceLang:   source,
	})
}

func (h *handlers) translateWithExamples(w http.ResponseWriter, r *http.Request) {
	text, source, err := h.decode(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.svc.Ready() {
		writeError(w, http.StatusServiceUnavailable, "translator not ready")
		return
	}

	res := h.svc.Annotate(r.Context(), text, source)
	resp := annotateResponse{
		Success:         res.Failure == nil,
		Error:           res.FailureMessage(),
		OriginalText:    res.OriginalText,
		Translation:     res.Translation,
		SourceLang:      res.SourceLang,
		Examples:        res.Examples,
		WordDefinitions: res.Definitions,
	}

	status := http.StatusOK
	if res.Failure != nil {
		status = http.StatusBadGateway
		if res.Failure.Kind == annotator.InvalidInput {
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, resp)
}

func (h *handlers) dictionary(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	entry, ok := h.svc.Lookup(word)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no definition found for %q", word))
		return
	}

	writeJSON(w, http.StatusOK, dictionaryResponse{
		Success:       true,
		Word:          word,
		Pronunciation: entry.Pronunciation,
		Chinese:       entry.Chinese,
		Definitions:   entry.Definitions,
		Examples:      entry.Examples,
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "healthy",
		TranslatorReady: h.svc.Ready(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
