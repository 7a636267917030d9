package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/citemed/abstractfmt/internal/model"
)

// sectionVocab maps normalized section labels to the header spellings
// that announce them in structured abstracts
var sectionVocab = []struct {
	label     string
	spellings []string
}{
	{"BACKGROUND", []string{"BACKGROUND", "INTRODUCTION"}},
	{"PURPOSE", []string{"PURPOSE", "AIM", "AIMS"}},
	{"OBJECTIVE", []string{"OBJECTIVE", "OBJECTIVES"}},
	{"METHODS", []string{"METHODS", "METHODOLOGY", "MATERIALS AND METHODS"}},
	{"APPROACH", []string{"APPROACH"}},
	{"PROCEDURE", []string{"PROCEDURE", "PROCEDURES"}},
	{"RESULTS", []string{"RESULTS", "FINDINGS", "MAIN RESULTS"}},
	{"OUTCOMES", []string{"OUTCOMES"}},
	{"CONCLUSIONS", []string{"CONCLUSION", "CONCLUSIONS"}},
	{"SIGNIFICANCE", []string{"SIGNIFICANCE", "IMPLICATIONS"}},
}

type sectionPattern struct {
	label string
	re    *regexp.Regexp
}

var sectionPatterns = compileSectionPatterns()

func compileSectionPatterns() []sectionPattern {
	var patterns []sectionPattern
	for _, v := range sectionVocab {
		for _, spelling := range v.spellings {
			// Header must be followed by a colon or period.
			re := regexp.MustCompile(`(?i)\b` + spelling + `\s*[:.]`)
			patterns = append(patterns, sectionPattern{label: v.label, re: re})
		}
	}
	return patterns
}

var (
	abbreviationRe = regexp.MustCompile(`\(([A-Z]{2,6})\)`)
	unitTermRe     = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*([A-Za-z]+)\b`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+`)

	measurementRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+(?:\.\d+)?\s*[%±]`),                     // percentages and ± values
		regexp.MustCompile(`\b\d+(?:\.\d+)?\s*-\s*\d+(?:\.\d+)?`),        // ranges
		regexp.MustCompile(`\b\d+(?:\.\d+)?\s*[A-Za-z]+(?:/[A-Za-z]+)*`), // numbers with units
		regexp.MustCompile(`[<>=≤≥]\s*\d+(?:\.\d+)?`),                    // comparison operators
	}
)

// FindSectionHeaders locates explicit section labels in the text,
// ordered by position
func FindSectionHeaders(text string) []model.SectionHeader {
	var headers []model.SectionHeader
	for _, p := range sectionPatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			headers = append(headers, model.SectionHeader{
				Label:    p.label,
				Text:     text[loc[0]:loc[1]],
				Position: loc[0],
			})
		}
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].Position < headers[j].Position })
	return headers
}

// Structure analyzes the overall shape of an abstract: counts, section
// headers, technical terms, and measurements
func Structure(text string) model.Structure {
	headers := FindSectionHeaders(text)
	return model.Structure{
		TotalLength:           len(text),
		WordCount:             len(strings.Fields(text)),
		SentenceCount:         len(sentenceEndRe.FindAllString(text, -1)),
		TechnicalTerms:        technicalTerms(text),
		Measurements:          measurements(text),
		Headers:               headers,
		HasStructuredSections: len(headers) > 0,
	}
}

// technicalTerms collects parenthesized abbreviations and unit tokens,
// deduplicated, in order of first occurrence
func technicalTerms(text string) []string {
	var terms []string
	seen := make(map[string]bool)
	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	for _, m := range abbreviationRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range unitTermRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return terms
}

func measurements(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range measurementRes {
		for _, m := range re.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	return found
}
