// Package pipeline orchestrates the formatting stages: analyze,
// classify, segment, highlight, render.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/citemed/abstractfmt/internal/analyze"
	"github.com/citemed/abstractfmt/internal/cache"
	"github.com/citemed/abstractfmt/internal/highlight"
	"github.com/citemed/abstractfmt/internal/model"
	"github.com/citemed/abstractfmt/internal/render"
	"github.com/citemed/abstractfmt/internal/segment"
)

// Formatter runs the complete formatting pipeline over one input
// string per call. Calls are synchronous and share no mutable state
// beyond the read-only NLP model and the result cache.
type Formatter struct {
	analyzer analyze.Analyzer
	config   *model.Config
	results  cache.Cache
}

// New creates a Formatter with the analyzer selected by the
// configuration. Model loading happens here; a missing model is a
// startup failure, not a per-call one.
func New(cfg *model.Config) (*Formatter, error) {
	var (
		analyzer analyze.Analyzer
		err      error
	)
	switch cfg.Analyzer.Engine {
	case model.EnginePunkt:
		analyzer, err = analyze.NewPunktAnalyzer()
	case model.EngineProse, "":
		analyzer, err = analyze.NewProseAnalyzer(cfg.Analyzer)
	default:
		err = fmt.Errorf("unknown analyzer engine %q (want %s or %s)",
			cfg.Analyzer.Engine, model.EngineProse, model.EnginePunkt)
	}
	if err != nil {
		return nil, err
	}
	return NewWithAnalyzer(analyzer, cfg), nil
}

// NewWithAnalyzer creates a Formatter around an injected analyzer.
// Tests use this with a fake analyzer.
func NewWithAnalyzer(analyzer analyze.Analyzer, cfg *model.Config) *Formatter {
	f := &Formatter{analyzer: analyzer, config: cfg}
	if cfg.Cache.Enabled {
		f.results = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}
	return f
}

// FormatConfig returns the formatter's configured rendering options
func (f *Formatter) FormatConfig() model.FormatConfig {
	return f.config.Format
}

// Format reformats one abstract with the configured output format.
// Empty input is a valid degenerate case producing empty output.
func (f *Formatter) Format(text string) (string, error) {
	return f.FormatAs(text, f.config.Format)
}

// FormatAs reformats one abstract with an explicit format override
func (f *Formatter) FormatAs(text string, fc model.FormatConfig) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	key := cache.Key(text, fc.Output, fc.LineWidth)
	if f.results != nil {
		if cached, ok := f.results.Get(key); ok {
			return cached, nil
		}
	}

	records, err := f.analyzer.Analyze(text)
	if err != nil {
		return "", fmt.Errorf("analyze: %w", err)
	}
	records = analyze.ClassifyAll(records)

	paragraphs := segment.Segment(records, f.config.Segment)

	spans := make([][]model.HighlightSpan, len(paragraphs))
	for i, p := range paragraphs {
		if p.IsHeader() {
			continue
		}
		spans[i] = highlight.Find(p.Text())
	}

	out, err := render.Render(paragraphs, spans, fc)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if f.results != nil {
		f.results.Set(key, out, f.config.Cache.TTL)
	}
	return out, nil
}
