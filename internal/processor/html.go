package processor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/citemed/abstractfmt/internal/pipeline"
	"golang.org/x/net/html"
)

var htmlTagRe = regexp.MustCompile(`(?i)^\s*<(!doctype|html|head|body|div|p|article|section)\b`)

// HTMLProcessor strips markup from HTML documents and formats the
// visible text
type HTMLProcessor struct {
	formatter *pipeline.Formatter
}

// NewHTMLProcessor creates the HTML processor
func NewHTMLProcessor(f *pipeline.Formatter) *HTMLProcessor {
	return &HTMLProcessor{formatter: f}
}

func (p *HTMLProcessor) Name() string { return "html" }

// CanProcess accepts documents opening with a structural HTML tag
func (p *HTMLProcessor) CanProcess(doc string) bool {
	return htmlTagRe.MatchString(doc)
}

// Process extracts the visible text and runs the formatting pipeline
func (p *HTMLProcessor) Process(doc string, opts Options) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	text := extractVisibleText(root)
	return p.formatter.FormatAs(text, opts.formatConfig(p.formatter.FormatConfig()))
}

// extractVisibleText collects text nodes, skipping scripts and styles
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}
