package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	LogLevel string

	// Translation flags
	Provider     string
	Fallback     string
	OpenAIModel  string
	GeminiModel  string
	DetectMethod string

	// Dictionary flags
	DictSource string
	DictPath   string

	// Command flags
	From      string
	Addr      string
	OutputDir string
	Archive   bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:     "info",
		Provider:     "openai",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
		DetectMethod: "cjk",
		DictSource:   "builtin",
		From:         "auto",
		Addr:         ":5000",
		OutputDir:    DefaultOutputDir(),
	}
}

// DefaultOutputDir is where batch results go unless --output is given.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "bilingo-output")
	}
	return filepath.Join(home, ".local", "state", "bilingo", "batch")
}
