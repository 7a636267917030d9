// Package abstractfmt makes dense scientific abstracts readable: it
// re-segments the text into paragraphs using discourse markers, named
// entities, and structural cues, and emphasizes technical terms.
//
// The heavy NLP lifting (sentence segmentation, POS tagging, NER) is
// delegated to the prose library; this package's own logic is pattern
// matching and paragraph assembly.
package abstractfmt

import (
	"github.com/citemed/abstractfmt/internal/analyze"
	"github.com/citemed/abstractfmt/internal/model"
	"github.com/citemed/abstractfmt/internal/pipeline"
	"github.com/citemed/abstractfmt/internal/processor"
)

// Structure is the result of AnalyzeStructure
type Structure = model.Structure

// Config mirrors the full formatter configuration
type Config = model.Config

// Sentinel errors surfaced by the library.
var (
	ErrModelUnavailable = model.ErrModelUnavailable
	ErrNoProcessorFound = model.ErrNoProcessorFound
)

// Option adjusts formatting configuration
type Option func(*model.Config)

// WithFormat selects the output encoding: "markdown", "html", or
// "plain"
func WithFormat(format string) Option {
	return func(c *model.Config) { c.Format.Output = format }
}

// WithLineWidth sets the cosmetic wrap width
func WithLineWidth(width int) Option {
	return func(c *model.Config) { c.Format.LineWidth = width }
}

// WithEngine selects the analyzer engine: "prose" (full NLP) or
// "punkt" (sentence boundaries only)
func WithEngine(engine string) Option {
	return func(c *model.Config) { c.Analyzer.Engine = engine }
}

// FormatAbstract reformats one abstract and returns the rendered
// string. Empty input produces empty output. A missing NLP model
// surfaces ErrModelUnavailable.
func FormatAbstract(text string, opts ...Option) (string, error) {
	cfg := model.DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	f, err := pipeline.New(cfg)
	if err != nil {
		return "", err
	}
	return f.Format(text)
}

// AnalyzeStructure reports the structural shape of an abstract:
// word and sentence counts, technical terms, and section headers.
func AnalyzeStructure(text string) Structure {
	return analyze.Structure(text)
}

// NewRegistry returns the document-processor registry with the
// standard processors (PubMed XML, HTML, Markdown, plain abstract,
// full text) registered in dispatch order. Custom processors are
// appended with Add.
func NewRegistry(opts ...Option) (*processor.Registry, error) {
	cfg := model.DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	f, err := pipeline.New(cfg)
	if err != nil {
		return nil, err
	}
	return processor.NewRegistry(f), nil
}
