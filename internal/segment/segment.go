// Package segment partitions analyzed sentences into paragraphs using
// heuristic break triggers.
package segment

import (
	"regexp"
	"strings"

	"github.com/citemed/abstractfmt/internal/analyze"
	"github.com/citemed/abstractfmt/internal/model"
)

// headerRe matches an explicit section header: a leading all-caps
// label of at least two characters followed by a colon
var headerRe = regexp.MustCompile(`^([A-Z][A-Z0-9 /&-]*[A-Z])\s*:\s*`)

// topicTransitionRes mark sentences that typically open a new topic
// in scientific prose
var topicTransitionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(We|Our|The study|This study|The present study)\b`),
	regexp.MustCompile(`(?i)^(To |In order to)`),
	regexp.MustCompile(`(?i)^(Analysis|Investigation|Evaluation)\s+(showed|revealed|demonstrated)`),
}

// Segment scans sentences left to right and partitions them into
// paragraphs. Break triggers, first match wins: explicit section
// header, discourse-marker change, topic transition, entity-set shift,
// result cue entering a cue-free paragraph, length ceiling. A
// discourse marker always beats an entity shift firing on the same
// sentence.
func Segment(records []model.SentenceRecord, cfg model.SegmentConfig) []model.Paragraph {
	if len(records) == 0 {
		return nil
	}
	ceiling := cfg.MaxSentences
	if ceiling <= 0 {
		ceiling = model.DefaultConfig().Segment.MaxSentences
	}
	floor := cfg.MergeWordFloor
	if floor <= 0 {
		floor = model.DefaultConfig().Segment.MergeWordFloor
	}

	var paragraphs []model.Paragraph
	var open []model.SentenceRecord
	flush := func() {
		if len(open) > 0 {
			paragraphs = append(paragraphs, model.Paragraph{Sentences: open})
			open = nil
		}
	}

	for _, rec := range records {
		if label, rest, ok := splitHeader(rec.Text); ok {
			flush()
			paragraphs = append(paragraphs, model.Paragraph{Header: label})
			if rest != "" {
				// The text after the colon opens the section's paragraph.
				r := rec
				r.Text = rest
				r.Start = rec.End - len(rest)
				r.Category = analyze.Classify(rest)
				open = append(open, r)
			}
			continue
		}
		if len(open) > 0 && shouldBreak(open, rec, ceiling) {
			flush()
		}
		open = append(open, rec)
	}
	flush()

	return mergeShort(paragraphs, floor)
}

func shouldBreak(open []model.SentenceRecord, rec model.SentenceRecord, ceiling int) bool {
	prev := open[len(open)-1]
	if rec.Category != model.DiscourseNone && rec.Category != prev.Category {
		return true
	}
	if isTopicTransition(rec.Text) && len(open) >= 2 {
		return true
	}
	if entityShift(prev, rec) {
		return true
	}
	if rec.ResultCue && !anyResultCue(open) {
		return true
	}
	return len(open) >= ceiling
}

// splitHeader returns the normalized header label and the remainder of
// the sentence after the colon
func splitHeader(text string) (label, rest string, ok bool) {
	m := headerRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", "", false
	}
	label = strings.TrimSpace(text[m[2]:m[3]])
	rest = strings.TrimSpace(text[m[1]:])
	return label, rest, true
}

func isTopicTransition(text string) bool {
	for _, re := range topicTransitionRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// entityShift reports a topic shift: both sentences carry entities and
// the sets share no member
func entityShift(prev, cur model.SentenceRecord) bool {
	if len(prev.Entities) == 0 || len(cur.Entities) == 0 {
		return false
	}
	seen := make(map[string]bool, len(prev.Entities))
	for _, e := range prev.Entities {
		seen[strings.ToLower(e.Text)] = true
	}
	for _, e := range cur.Entities {
		if seen[strings.ToLower(e.Text)] {
			return false
		}
	}
	return true
}

func anyResultCue(records []model.SentenceRecord) bool {
	for _, r := range records {
		if r.ResultCue {
			return true
		}
	}
	return false
}

// mergeShort folds a paragraph holding a single sentence below the
// word floor into the following paragraph, preventing
// over-fragmentation from noisy triggers. Section headers never merge.
func mergeShort(paragraphs []model.Paragraph, floor int) []model.Paragraph {
	var merged []model.Paragraph
	for i := 0; i < len(paragraphs); i++ {
		p := paragraphs[i]
		if !p.IsHeader() && len(p.Sentences) == 1 &&
			p.Sentences[0].WordCount() < floor &&
			i+1 < len(paragraphs) && !paragraphs[i+1].IsHeader() {
			paragraphs[i+1].Sentences = append(
				[]model.SentenceRecord{p.Sentences[0]}, paragraphs[i+1].Sentences...)
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
