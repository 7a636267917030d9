// Package processor provides the extensible document-processing
// framework: a registry of processors dispatched by capability.
package processor

import (
	"github.com/citemed/abstractfmt/internal/model"
	"github.com/citemed/abstractfmt/internal/pipeline"
)

// Options carries per-call formatting options. Zero values fall back
// to the formatter's configuration.
type Options struct {
	Output    string // markdown, html, or plain
	LineWidth int
}

func (o Options) formatConfig(base model.FormatConfig) model.FormatConfig {
	if o.Output != "" {
		base.Output = o.Output
	}
	if o.LineWidth > 0 {
		base.LineWidth = o.LineWidth
	}
	return base
}

// Processor handles one class of scientific document
type Processor interface {
	Name() string
	// CanProcess reports whether this processor recognizes the document
	CanProcess(doc string) bool
	// Process formats the document
	Process(doc string, opts Options) (string, error)
}

// Registry is an ordered sequence of processors. Dispatch tries
// processors in registration order and uses the first that accepts
// the document.
type Registry struct {
	processors []Processor
}

// NewRegistry creates a registry with the standard processors in
// dispatch order: structure-specific inputs first, the word-count
// heuristics last.
func NewRegistry(f *pipeline.Formatter) *Registry {
	r := &Registry{}
	r.Add(NewPubMedProcessor(f))
	r.Add(NewHTMLProcessor(f))
	r.Add(NewMarkdownProcessor(f))
	r.Add(NewAbstractProcessor(f))
	r.Add(NewFullTextProcessor())
	return r
}

// Add appends a processor to the dispatch order
func (r *Registry) Add(p Processor) {
	r.processors = append(r.processors, p)
}

// Names lists registered processors in dispatch order
func (r *Registry) Names() []string {
	names := make([]string, len(r.processors))
	for i, p := range r.processors {
		names[i] = p.Name()
	}
	return names
}

// Process dispatches the document to the first accepting processor
func (r *Registry) Process(doc string, opts Options) (string, error) {
	for _, p := range r.processors {
		if p.CanProcess(doc) {
			return p.Process(doc, opts)
		}
	}
	return "", model.ErrNoProcessorFound
}
