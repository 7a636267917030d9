// Package render serializes paragraphs and highlight spans into
// Markdown, HTML, or plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/citemed/abstractfmt/internal/model"
)

// Render serializes paragraphs into the configured output format.
// spans holds one span list per paragraph (nil entries are fine);
// non-highlighted text content is never altered. Wrapping to
// cfg.LineWidth is cosmetic only.
func Render(paragraphs []model.Paragraph, spans [][]model.HighlightSpan, cfg model.FormatConfig) (string, error) {
	switch cfg.Output {
	case model.FormatMarkdown, model.FormatHTML, model.FormatPlain:
	default:
		return "", fmt.Errorf("unsupported output format %q", cfg.Output)
	}
	width := cfg.LineWidth
	if width <= 0 {
		width = model.DefaultConfig().Format.LineWidth
	}

	var blocks []string
	for i, p := range paragraphs {
		if p.IsHeader() {
			blocks = append(blocks, renderHeader(p.Header, cfg.Output))
			continue
		}
		text := p.Text()
		if text == "" {
			continue
		}
		var ps []model.HighlightSpan
		if i < len(spans) {
			ps = spans[i]
		}
		blocks = append(blocks, wrap(applySpans(text, ps, cfg.Output), width))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func renderHeader(label, format string) string {
	switch format {
	case model.FormatMarkdown:
		return "### " + label
	case model.FormatHTML:
		return "<h3>" + label + "</h3>"
	default:
		return label + "\n" + strings.Repeat("=", len(label))
	}
}

// applySpans wraps highlight spans in emphasis markup. Overlapping
// spans resolve outermost-first: a span starting inside one already
// emitted is dropped.
func applySpans(text string, spans []model.HighlightSpan, format string) string {
	var openTag, closeTag string
	switch format {
	case model.FormatMarkdown:
		openTag, closeTag = "**", "**"
	case model.FormatHTML:
		openTag, closeTag = "<strong>", "</strong>"
	default:
		return text
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start < prev || s.End > len(text) || s.Start >= s.End {
			continue
		}
		b.WriteString(text[prev:s.Start])
		b.WriteString(openTag)
		b.WriteString(text[s.Start:s.End])
		b.WriteString(closeTag)
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// wrap greedily folds text to the given width. Word content and order
// are untouched; only whitespace changes.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			lineLen = len(w)
			continue
		}
		if lineLen+1+len(w) > width {
			b.WriteString("\n")
			b.WriteString(w)
			lineLen = len(w)
		} else {
			b.WriteString(" ")
			b.WriteString(w)
			lineLen += 1 + len(w)
		}
	}
	return b.String()
}
