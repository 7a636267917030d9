package processor

import (
	"fmt"
	"strings"

	"github.com/citemed/abstractfmt/internal/pipeline"
)

// Abstracts are typically 50-2000 words; anything longer is treated
// as a full-text article.
const (
	abstractMinWords = 50
	abstractMaxWords = 2000
)

// AbstractProcessor formats plain-text scientific abstracts
type AbstractProcessor struct {
	formatter *pipeline.Formatter
}

// NewAbstractProcessor creates the abstract processor
func NewAbstractProcessor(f *pipeline.Formatter) *AbstractProcessor {
	return &AbstractProcessor{formatter: f}
}

func (p *AbstractProcessor) Name() string { return "abstract" }

// CanProcess accepts documents in the typical abstract word range
func (p *AbstractProcessor) CanProcess(doc string) bool {
	n := len(strings.Fields(doc))
	return n >= abstractMinWords && n <= abstractMaxWords
}

// Process runs the formatting pipeline over the abstract
func (p *AbstractProcessor) Process(doc string, opts Options) (string, error) {
	return p.formatter.FormatAs(doc, opts.formatConfig(p.formatter.FormatConfig()))
}

// FullTextProcessor recognizes full-text articles. Section-aware
// full-text formatting is not implemented; the processor reports what
// it would handle.
type FullTextProcessor struct{}

// NewFullTextProcessor creates the full-text processor
func NewFullTextProcessor() *FullTextProcessor {
	return &FullTextProcessor{}
}

func (p *FullTextProcessor) Name() string { return "fulltext" }

// CanProcess accepts documents longer than any plausible abstract
func (p *FullTextProcessor) CanProcess(doc string) bool {
	return len(strings.Fields(doc)) > abstractMaxWords
}

// Process reports the placeholder status for full-text articles
func (p *FullTextProcessor) Process(doc string, _ Options) (string, error) {
	return fmt.Sprintf("Full-text processing not yet implemented.\n"+
		"Would handle sections, figures, tables, citations, etc.\n"+
		"Document length: %d characters", len(doc)), nil
}
