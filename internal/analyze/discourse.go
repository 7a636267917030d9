package analyze

import (
	"strings"

	"github.com/citemed/abstractfmt/internal/model"
)

// markerSet pairs a discourse category with the sentence-initial
// markers that signal it
type markerSet struct {
	category model.DiscourseCategory
	markers  []string
}

// discourseMarkers in fixed priority order: contrast beats addition
// beats result beats sequence. First match wins.
var discourseMarkers = []markerSet{
	{model.DiscourseContrast, []string{
		"however", "nevertheless", "nonetheless", "conversely",
		"but", "in contrast", "on the other hand",
	}},
	{model.DiscourseAddition, []string{
		"additionally", "furthermore", "moreover", "also",
		"in addition", "besides",
	}},
	{model.DiscourseResult, []string{
		"consequently", "therefore", "thus", "hence",
		"as a result", "accordingly",
	}},
	{model.DiscourseSequence, []string{
		"first", "second", "third", "next", "then",
		"finally", "subsequently",
	}},
}

// Classify returns the discourse category a sentence opens with, or
// DiscourseNone. Matching is case-insensitive and requires the marker
// to be followed by a comma, whitespace, or sentence punctuation so
// that "Thusly" does not match "thus".
func Classify(text string) model.DiscourseCategory {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, set := range discourseMarkers {
		for _, marker := range set.markers {
			if !strings.HasPrefix(lower, marker) {
				continue
			}
			rest := lower[len(marker):]
			if rest == "" {
				return set.category
			}
			switch rest[0] {
			case ',', ' ', '.', ';', ':':
				return set.category
			}
		}
	}
	return model.DiscourseNone
}

// ClassifyAll assigns a category to every record in place and returns
// the slice for chaining
func ClassifyAll(records []model.SentenceRecord) []model.SentenceRecord {
	for i := range records {
		records[i].Category = Classify(records[i].Text)
	}
	return records
}
