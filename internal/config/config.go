package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/translation"
)

type Config struct {
	Env         string            `mapstructure:"env" validate:"oneof=development production"`
	Log         LogConfig         `mapstructure:"log"`
	Translation TranslationConfig `mapstructure:"translation"`
	Dictionary  DictionaryConfig  `mapstructure:"dictionary"`
	Detect      DetectConfig      `mapstructure:"detect"`
	Server      ServerConfig      `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type TranslationConfig struct {
	Provider      string        `mapstructure:"provider" validate:"oneof=openai gemini mymemory"`
	Fallback      string        `mapstructure:"fallback" validate:"omitempty,oneof=openai gemini mymemory,nefield=Provider"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=0"`
	OpenAIModel   string        `mapstructure:"openai_model"`
	OpenAIBaseURL string        `mapstructure:"openai_base_url" validate:"omitempty,url"`
	OpenAIKey     string        `mapstructure:"openai_key"`
	GeminiModel   string        `mapstructure:"gemini_model"`
	GeminiKey     string        `mapstructure:"gemini_key"`
	MyMemoryURL   string        `mapstructure:"mymemory_url" validate:"omitempty,url"`
	MyMemoryEmail string        `mapstructure:"mymemory_email" validate:"omitempty,email"`
	Breaker       BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout" validate:"min=0"`
}

type DictionaryConfig struct {
	Source string `mapstructure:"source" validate:"oneof=builtin file sql"`
	Path   string `mapstructure:"path" validate:"required_if=Source file"`
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 mysql pgx"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Source sql"`
	Table  string `mapstructure:"table" validate:"required"`
}

type DetectConfig struct {
	Method string `mapstructure:"method" validate:"oneof=cjk whatlang"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimit       float64       `mapstructure:"rate_limit" validate:"min=0"`
	RateBurst       int           `mapstructure:"rate_burst" validate:"min=0"`
}

// SetDefaults registers the default of every key, which also makes every
// key visible to viper's environment lookup.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("translation.provider", "openai")
	v.SetDefault("translation.fallback", "")
	v.SetDefault("translation.timeout", 30*time.Second)
	v.SetDefault("translation.openai_model", "gpt-4o-mini")
	v.SetDefault("translation.openai_base_url", "")
	v.SetDefault("translation.openai_key", "")
	v.SetDefault("translation.gemini_model", "gemini-2.0-flash")
	v.SetDefault("translation.gemini_key", "")
	v.SetDefault("translation.mymemory_url", translation.DefaultMyMemoryURL)
	v.SetDefault("translation.mymemory_email", "")
	v.SetDefault("translation.breaker.max_failures", 5)
	v.SetDefault("translation.breaker.open_timeout", 30*time.Second)

	v.SetDefault("dictionary.source", "builtin")
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.driver", "sqlite3")
	v.SetDefault("dictionary.dsn", "")
	v.SetDefault("dictionary.table", dictionary.DefaultTable)

	v.SetDefault("detect.method", "cjk")

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// ValidateStruct checks the validate tags of s and joins all violations
// into one error.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validation failed: %w", err)
		}
		var errMsgs []string
		for _, err := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Field(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// ProviderConfig converts the translation section for translation.NewProvider.
func (c *Config) ProviderConfig() *translation.Config {
	t := c.Translation
	return &translation.Config{
		Provider:           t.Provider,
		Fallback:           t.Fallback,
		Timeout:            t.Timeout,
		OpenAIKey:          t.OpenAIKey,
		OpenAIModel:        t.OpenAIModel,
		OpenAIBaseURL:      t.OpenAIBaseURL,
		GeminiKey:          t.GeminiKey,
		GeminiModel:        t.GeminiModel,
		MyMemoryURL:        t.MyMemoryURL,
		MyMemoryEmail:      t.MyMemoryEmail,
		BreakerMaxFailures: t.Breaker.MaxFailures,
		BreakerOpenTimeout: t.Breaker.OpenTimeout,
	}
}

// DictionaryOptions converts the dictionary section for dictionary.Load.
func (c *Config) DictionaryOptions() dictionary.Options {
	d := c.Dictionary
	return dictionary.Options{
		Source: d.Source,
		Path:   d.Path,
		Driver: d.Driver,
		DSN:    d.DSN,
		Table:  d.Table,
	}
}
