package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "openai", cfg.Translation.Provider)
	assert.Equal(t, 30*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, uint32(5), cfg.Translation.Breaker.MaxFailures)
	assert.Equal(t, "builtin", cfg.Dictionary.Source)
	assert.Equal(t, "dictionary_entries", cfg.Dictionary.Table)
	assert.Equal(t, "cjk", cfg.Detect.Method)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10.0, cfg.Server.RateLimit)
}

func TestLoadDurationStrings(t *testing.T) {
	cfg, err := Load(newViper(map[string]any{
		"translation.timeout":     "5s",
		"server.shutdown_timeout": "2m",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.ShutdownTimeout)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"unknown provider", map[string]any{"translation.provider": "babelfish"}, "Field: Provider, Tag: oneof"},
		{"fallback equals provider", map[string]any{"translation.fallback": "openai"}, "Field: Fallback, Tag: nefield"},
		{"file without path", map[string]any{"dictionary.source": "file"}, "Field: Path, Tag: required_if"},
		{"sql without dsn", map[string]any{"dictionary.source": "sql"}, "Field: DSN, Tag: required_if"},
		{"unknown driver", map[string]any{"dictionary.driver": "oracle"}, "Field: Driver, Tag: oneof"},
		{"unknown detector", map[string]any{"detect.method": "magic"}, "Field: Method, Tag: oneof"},
		{"bad env", map[string]any{"env": "staging"}, "Field: Env, Tag: oneof"},
		{"bad email", map[string]any{"translation.mymemory_email": "nope"}, "Field: MyMemoryEmail, Tag: email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(tt.overrides))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed: ")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConversions(t *testing.T) {
	cfg, err := Load(newViper(map[string]any{
		"translation.provider":   "mymemory",
		"translation.fallback":   "openai",
		"translation.openai_key": "sk-test",
		"dictionary.source":      "sql",
		"dictionary.dsn":         "file:dict.db",
	}))
	require.NoError(t, err)

	pc := cfg.ProviderConfig()
	assert.Equal(t, "mymemory", pc.Provider)
	assert.Equal(t, "openai", pc.Fallback)
	assert.Equal(t, "sk-test", pc.OpenAIKey)
	assert.Equal(t, uint32(5), pc.BreakerMaxFailures)

	opts := cfg.DictionaryOptions()
	assert.Equal(t, "sql", opts.Source)
	assert.Equal(t, "sqlite3", opts.Driver)
	assert.Equal(t, "file:dict.db", opts.DSN)
}
