// Package highlight finds technical terms worth emphasizing in
// rendered paragraphs.
package highlight

import (
	"regexp"
	"sort"

	"github.com/citemed/abstractfmt/internal/model"
)

// abbreviationRe matches a parenthesized all-caps token of length 2-6.
// The capture group excludes the parentheses; the span covers the
// token only.
var abbreviationRe = regexp.MustCompile(`\(([A-Z]{2,6})\)`)

// statisticRes match numeric results: p/n expressions, percentages and
// ± values, and bare numbers
var statisticRes = []*regexp.Regexp{
	regexp.MustCompile(`\b[pn]\s*[<>=≤≥]\s*\d+(?:\.\d+)?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?\s*[%±](?:\s*\d+(?:\.\d+)?)?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?\b`),
}

// measurementRe matches a number followed by a unit from a fixed
// vocabulary. Longer units come first so "mm" is not read as "m".
var measurementRe = regexp.MustCompile(
	`\b\d+(?:\.\d+)?\s*(?:mmHg|mmol|mGy|mm|cm|km|kg|kcal|kHz|MHz|GHz|Hz|Gy|mg|µg|ug|mL|ml|ms|min|mol|nm|µm|um|kPa|cal|dB|°C|hr|h|g|m|l|L|K|s)\b`)

// Find returns all highlight spans in text, ordered by start offset
// with longer spans first. Pattern classes are checked independently;
// spans may overlap, and the renderer resolves overlap outermost-first.
func Find(text string) []model.HighlightSpan {
	var spans []model.HighlightSpan

	for _, m := range abbreviationRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, model.HighlightSpan{
			Start: m[2], End: m[3], Kind: model.HighlightAbbreviation,
		})
	}
	for _, re := range statisticRes {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, model.HighlightSpan{
				Start: m[0], End: m[1], Kind: model.HighlightStatistic,
			})
		}
	}
	for _, m := range measurementRe.FindAllStringIndex(text, -1) {
		spans = append(spans, model.HighlightSpan{
			Start: m[0], End: m[1], Kind: model.HighlightMeasurement,
		})
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	return spans
}
