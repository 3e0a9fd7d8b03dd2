package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal"
	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/archive"
	"codeberg.org/snonux/bilingo/internal/batch"
	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/render"
)

// OutputFile is the name of the batch result file inside the output directory.
const OutputFile = "annotations.jsonl"

// Annotator is the part of the annotator the processor uses.
type Annotator interface {
	Annotate(ctx context.Context, text string, source lang.Lang) annotator.Result
}

// Options controls a batch run.
type Options struct {
	OutputDir string
	// Archive moves an existing OutputDir away before the run
	Archive bool
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Total      int
	Translated int
	Failed     int
}

// record is one line of the output file.
type record struct {
	Line int `json:"line"`
	annotator.Result
}

// Processor handles the main annotation logic of the CLI
type Processor struct {
	ann      Annotator
	detector lang.Detector
	out      io.Writer
	logger   *zap.Logger
}

// NewProcessor creates a new processor writing human output to out
func NewProcessor(ann Annotator, detector lang.Detector, out io.Writer, logger *zap.Logger) *Processor {
	if detector == nil {
		detector = lang.CJKDetector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{ann: ann, detector: detector, out: out, logger: logger.Named("processor")}
}

// Resolve returns source, or the detected language of text when source is
// empty.
func (p *Processor) Resolve(text string, source lang.Lang) lang.Lang {
	if source != "" {
		return source
	}
	return p.detector.Detect(text)
}

// ProcessSingle annotates one text and renders it. An empty source means
// auto detection.
func (p *Processor) ProcessSingle(ctx context.Context, text string, source lang.Lang) annotator.Result {
	res := p.ann.Annotate(ctx, text, p.Resolve(text, source))
	render.Annotation(p.out, res, render.DefaultMaxExamples)
	return res
}

// ProcessBatch annotates every item of a batch file and writes one JSON
// object per item to <OutputDir>/annotations.jsonl. A failing item is
// counted and the run continues.
func (p *Processor) ProcessBatch(ctx context.Context, path string, opts Options) (Summary, error) {
	items, err := batch.ReadBatchFile(path)
	if err != nil {
		return Summary{}, err
	}

	if opts.Archive {
		if _, err := os.Stat(opts.OutputDir); err == nil {
			archived, err := archive.ArchiveDir(opts.OutputDir)
			if err != nil {
				return Summary{}, err
			}
			fmt.Fprintf(p.out, "Previous output archived to: %s\n", archived)
		}
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(opts.OutputDir, OutputFile)
	f, err := os.Create(outPath)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)

	summary := Summary{Total: len(items)}
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			p.printSummary(summary, outPath)
			return summary, fmt.Errorf("batch interrupted: %w", err)
		}

		fmt.Fprintf(p.out, "Processing %d/%d: %s\n", i+1, len(items), internal.Abbreviate(item.Text, 40))

		res := p.ann.Annotate(ctx, item.Text, p.Resolve(item.Text, item.Source))
		if res.Failure != nil {
			summary.Failed++
			fmt.Fprintf(p.out, "  Error: %s\n", res.Failure.Message)
			p.logger.Warn("batch item failed",
				zap.Int("line", item.Line),
				zap.String("kind", string(res.Failure.Kind)))
		} else {
			summary.Translated++
		}

		if err := enc.Encode(record{Line: item.Line, Result: res}); err != nil {
			return summary, fmt.Errorf("failed to write result for line %d: %w", item.Line, err)
		}
	}

	if err := f.Close(); err != nil {
		return summary, fmt.Errorf("failed to close output file: %w", err)
	}

	p.printSummary(summary, outPath)
	return summary, nil
}

func (p *Processor) printSummary(s Summary, outPath string) {
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total texts: %d\n", s.Total)
	fmt.Fprintf(p.out, "Translated: %d\n", s.Translated)
	if s.Failed > 0 {
		fmt.Fprintf(p.out, "Failed: %d\n", s.Failed)
	}
	fmt.Fprintf(p.out, "Results: %s\n", outPath)
	fmt.Fprintf(p.out, "================================\n")
}
