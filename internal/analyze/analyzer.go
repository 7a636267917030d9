// Package analyze wraps the external NLP engines and the heuristic
// classifiers that read their output.
package analyze

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/citemed/abstractfmt/internal/model"
	prose "github.com/jdkato/prose/v2"
)

// Analyzer turns raw text into an ordered sequence of sentence records
type Analyzer interface {
	// Analyze returns one record per detected sentence. Empty input
	// yields an empty slice and no error.
	Analyze(text string) ([]model.SentenceRecord, error)
}

// ProseAnalyzer is the default analyzer, backed by the prose NLP
// library: sentence segmentation, POS tagging, and named-entity
// recognition.
type ProseAnalyzer struct {
	customModel *prose.Model
}

// NewProseAnalyzer creates the prose-backed analyzer. When cfg.ModelPath
// names a custom model directory it must exist; a missing directory is
// a startup failure surfaced as ErrModelUnavailable.
func NewProseAnalyzer(cfg model.AnalyzerConfig) (*ProseAnalyzer, error) {
	a := &ProseAnalyzer{}
	if cfg.ModelPath != "" {
		if _, err := os.Stat(cfg.ModelPath); err != nil {
			return nil, fmt.Errorf("%w: model directory %q not readable: %v (train one with prose or leave model_path empty to use the built-in English model)",
				model.ErrModelUnavailable, cfg.ModelPath, err)
		}
		a.customModel = prose.ModelFromDisk(cfg.ModelPath)
	}
	return a, nil
}

// Analyze segments text into sentences and attaches named entities
func (a *ProseAnalyzer) Analyze(text string) ([]model.SentenceRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	opts := []prose.DocOpt{
		prose.WithSegmentation(true),
		prose.WithTagging(true),
		prose.WithExtraction(true),
	}
	if a.customModel != nil {
		opts = append(opts, prose.UsingModel(a.customModel))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	var sents []string
	for _, s := range doc.Sentences() {
		sents = append(sents, s.Text)
	}
	records := buildRecords(text, sents)

	// prose reports entities at document level without offsets; locate
	// each occurrence left to right and bucket it into the sentence
	// whose span contains it.
	cursor := 0
	for _, ent := range doc.Entities() {
		rel := strings.Index(text[cursor:], ent.Text)
		if rel < 0 {
			continue
		}
		abs := cursor + rel
		cursor = abs + len(ent.Text)
		for i := range records {
			if abs >= records[i].Start && abs < records[i].End {
				records[i].Entities = append(records[i].Entities, model.Entity{
					Label: ent.Label,
					Text:  ent.Text,
					Start: abs,
				})
				break
			}
		}
	}

	return records, nil
}

// resultCueRe matches sentences reporting findings: methodology verbs,
// percentages, significance markers, summary statistics. Ported from
// the battery used to spot results sections in clinical abstracts.
var resultCueRe = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(showed|demonstrated|revealed|found|indicated|observed)\b`),
	regexp.MustCompile(`\d+(?:\.\d+)?%|\d+±\d+|\d+ out of \d+`),
	regexp.MustCompile(`(?i)\b(significant|significantly|correlation)\b|\bp\s*[<>=]`),
	regexp.MustCompile(`(?i)\b(average|mean|median|range)\b`),
}

func hasResultCue(text string) bool {
	for _, re := range resultCueRe {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// buildRecords assigns byte offsets and result cues to sentence texts.
// Sentences are located in order with a moving cursor, so repeated
// sentences keep distinct offsets.
func buildRecords(text string, sents []string) []model.SentenceRecord {
	records := make([]model.SentenceRecord, 0, len(sents))
	cursor := 0
	for _, raw := range sents {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		start := cursor
		if rel := strings.Index(text[cursor:], trimmed); rel >= 0 {
			start = cursor + rel
			cursor = start + len(trimmed)
		}
		records = append(records, model.SentenceRecord{
			Text:      trimmed,
			Start:     start,
			End:       start + len(trimmed),
			Category:  model.DiscourseNone,
			ResultCue: hasResultCue(trimmed),
		})
	}
	return records
}
