package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/config"
	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/interactive"
	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/models"
	"codeberg.org/snonux/bilingo/internal/processor"
	"codeberg.org/snonux/bilingo/internal/render"
	"codeberg.org/snonux/bilingo/internal/server"
	"codeberg.org/snonux/bilingo/internal/translation"
)

// ErrTranslationFailed is returned by one-shot commands whose translation
// failed after the failure was already shown to the user.
var ErrTranslationFailed = errors.New("translation failed")

// App holds the loaded components of one bilingo invocation.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	detector lang.Detector
	ann      *annotator.Annotator
	proc     *processor.Processor
	in       io.Reader
	out      io.Writer

	// providerErr is why no translator is configured, nil when ready
	providerErr error
}

// New loads the dictionary and the translation provider. A provider that
// cannot be created is logged and leaves the app running without a
// translator, so that lookups and the health endpoint keep working.
func New(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	detector, err := lang.NewDetector(cfg.Detect.Method)
	if err != nil {
		return nil, err
	}

	dict, err := dictionary.Load(ctx, cfg.DictionaryOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	logger.Debug("dictionary loaded",
		zap.String("source", cfg.Dictionary.Source),
		zap.Int("entries", dict.Len()))

	a := &App{
		cfg:      cfg,
		logger:   logger,
		detector: detector,
		in:       in,
		out:      out,
	}

	var translator annotator.Translator
	provider, err := translation.NewProvider(ctx, cfg.ProviderConfig(), logger)
	if err != nil {
		a.providerErr = err
		logger.Warn("translator not available", zap.Error(err))
	} else {
		translator = provider
		logger.Debug("translator ready", zap.String("provider", provider.Name()))
	}

	a.ann = annotator.New(translator, dict, logger)
	a.proc = processor.NewProcessor(a.ann, detector, out, logger)
	return a, nil
}

// Ready reports whether a translator is configured.
func (a *App) Ready() bool {
	return a.ann.Ready()
}

// Menu runs the interactive menu on the app's input and output.
func (a *App) Menu(ctx context.Context) error {
	if a.providerErr != nil {
		fmt.Fprintf(a.out, "Warning: translator not available: %v\n", a.providerErr)
	}
	return interactive.New(a.ann, a.detector, a.in, a.out, a.logger).Run(ctx)
}

// Serve runs the HTTP API until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	s := a.cfg.Server
	srv := server.New(server.Config{
		Addr:            s.Addr,
		ReadTimeout:     s.ReadTimeout,
		WriteTimeout:    s.WriteTimeout,
		ShutdownTimeout: s.ShutdownTimeout,
		CORSOrigins:     s.CORSOrigins,
		RateLimit:       s.RateLimit,
		RateBurst:       s.RateBurst,
	}, a.ann, a.detector, a.logger)

	fmt.Fprintf(a.out, "Serving on %s\n", s.Addr)
	return srv.Run(ctx)
}

// Translate prints the translation of text. An empty source is detected.
func (a *App) Translate(ctx context.Context, text string, source lang.Lang) error {
	if err := a.requireTranslator(); err != nil {
		return err
	}

	translation, err := a.ann.Translate(ctx, text, a.proc.Resolve(text, source))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Translation: %s\n", translation)
	return nil
}

// Lookup prints the dictionary entry of word.
func (a *App) Lookup(_ context.Context, word string) error {
	entry, found := a.ann.Lookup(word)
	if !found {
		render.NotFound(a.out, word)
		return nil
	}
	render.Entry(a.out, entry)
	return nil
}

// Annotate prints the translation of text with dictionary examples.
func (a *App) Annotate(ctx context.Context, text string, source lang.Lang) error {
	if err := a.requireTranslator(); err != nil {
		return err
	}

	res := a.proc.ProcessSingle(ctx, text, source)
	if res.Failure != nil {
		return ErrTranslationFailed
	}
	return nil
}

// Batch annotates every line of file into outputDir.
func (a *App) Batch(ctx context.Context, file, outputDir string, archive bool) error {
	if err := a.requireTranslator(); err != nil {
		return err
	}

	_, err := a.proc.ProcessBatch(ctx, file, processor.Options{
		OutputDir: outputDir,
		Archive:   archive,
	})
	return err
}

// ListModels prints the OpenAI chat models for the configured key.
func (a *App) ListModels(ctx context.Context) error {
	t := a.cfg.Translation
	return models.NewLister(t.OpenAIKey, t.OpenAIBaseURL).Print(ctx, a.out, t.OpenAIModel)
}

func (a *App) requireTranslator() error {
	if a.providerErr != nil {
		return fmt.Errorf("translator not available: %w", a.providerErr)
	}
	return nil
}
