package processor

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/citemed/abstractfmt/internal/pipeline"
)

// PubMedProcessor extracts abstract text from PubMed efetch XML.
// Structured abstracts carry Label attributes (BACKGROUND, METHODS,
// ...) which are preserved as explicit section headers.
type PubMedProcessor struct {
	formatter *pipeline.Formatter
}

// NewPubMedProcessor creates the PubMed XML processor
func NewPubMedProcessor(f *pipeline.Formatter) *PubMedProcessor {
	return &PubMedProcessor{formatter: f}
}

func (p *PubMedProcessor) Name() string { return "pubmed" }

// CanProcess accepts efetch XML containing AbstractText nodes
func (p *PubMedProcessor) CanProcess(doc string) bool {
	trimmed := strings.TrimSpace(doc)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	return strings.Contains(doc, "<AbstractText") || strings.Contains(doc, "<PubmedArticle")
}

// Process extracts the labeled abstract sections and runs the
// formatting pipeline
func (p *PubMedProcessor) Process(doc string, opts Options) (string, error) {
	root, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse pubmed xml: %w", err)
	}

	nodes := xmlquery.Find(root, "//AbstractText")
	if len(nodes) == 0 {
		return "", fmt.Errorf("pubmed xml contains no AbstractText elements")
	}

	var parts []string
	for _, n := range nodes {
		text := strings.TrimSpace(n.InnerText())
		if text == "" {
			continue
		}
		if label := strings.TrimSpace(n.SelectAttr("Label")); label != "" {
			parts = append(parts, strings.ToUpper(label)+": "+text)
		} else {
			parts = append(parts, text)
		}
	}

	return p.formatter.FormatAs(strings.Join(parts, " "),
		opts.formatConfig(p.formatter.FormatConfig()))
}
