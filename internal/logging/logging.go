package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a development logger for env "development" and a production
// logger otherwise. Level and encoding override the preset; empty values
// keep it. Logs go to stderr so stdout stays free for command output.
func New(env, level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.Level = lvl
	}
	if format != "" {
		cfg.Encoding = format
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
