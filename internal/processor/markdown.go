package processor

import (
	"regexp"
	"strings"

	"github.com/citemed/abstractfmt/internal/pipeline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

var markdownCueRe = regexp.MustCompile(`(?m)^#{1,6}\s|\*\*[^*]+\*\*|^\s*[-*]\s+\S|\[[^\]]+\]\(`)

// MarkdownProcessor strips markdown syntax from already-marked-up
// abstracts so they can be re-formatted from plain text
type MarkdownProcessor struct {
	formatter *pipeline.Formatter
	md        goldmark.Markdown
}

// NewMarkdownProcessor creates the markdown processor
func NewMarkdownProcessor(f *pipeline.Formatter) *MarkdownProcessor {
	return &MarkdownProcessor{
		formatter: f,
		md:        goldmark.New(),
	}
}

func (p *MarkdownProcessor) Name() string { return "markdown" }

// CanProcess accepts documents containing markdown syntax
func (p *MarkdownProcessor) CanProcess(doc string) bool {
	return markdownCueRe.MatchString(doc)
}

// Process parses the markdown, extracts plain text (headings become
// "LABEL:" section headers), and runs the formatting pipeline
func (p *MarkdownProcessor) Process(doc string, opts Options) (string, error) {
	text, err := p.plainText([]byte(doc))
	if err != nil {
		return "", err
	}
	return p.formatter.FormatAs(text, opts.formatConfig(p.formatter.FormatConfig()))
}

func (p *MarkdownProcessor) plainText(source []byte) (string, error) {
	root := p.md.Parser().Parse(gmtext.NewReader(source))

	var buf strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.(type) {
			case *ast.Heading:
				// Re-announce headings as explicit section labels so
				// segmentation keeps them.
				buf.WriteString(": ")
			case *ast.Paragraph, *ast.ListItem:
				buf.WriteString(" ")
			}
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteString(" ")
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(buf.String()), " "), nil
}
