package model

// DiscourseCategory classifies the rhetorical relation a sentence
// signals toward its predecessor
type DiscourseCategory string

const (
	DiscourseNone     DiscourseCategory = "none"
	DiscourseContrast DiscourseCategory = "contrast"
	DiscourseAddition DiscourseCategory = "addition"
	DiscourseResult   DiscourseCategory = "result"
	DiscourseSequence DiscourseCategory = "sequence"
)

// Entity is a named-entity span tagged by the NLP engine
type Entity struct {
	Label string `json:"label"`           // e.g., "PERSON", "GPE", "ORG"
	Text  string `json:"text"`            // Surface text of the entity
	Start int    `json:"start,omitempty"` // Byte offset into the source text
}

// SentenceRecord is one sentence of the analyzed input.
// Immutable once produced by the analyzer.
type SentenceRecord struct {
	Text      string            `json:"text"`
	Start     int               `json:"start"` // Byte offset of the sentence in the input
	End       int               `json:"end"`
	Entities  []Entity          `json:"entities,omitempty"`
	Category  DiscourseCategory `json:"category"`
	ResultCue bool              `json:"result_cue,omitempty"` // Statistic or methodology-verb present
}

// WordCount returns the number of whitespace-separated words
func (s SentenceRecord) WordCount() int {
	return countWords(s.Text)
}

// Paragraph is an ordered run of sentences, optionally headed by an
// explicit section label (e.g., "BACKGROUND"). Header paragraphs carry
// no sentences.
type Paragraph struct {
	Header    string           `json:"header,omitempty"`
	Sentences []SentenceRecord `json:"sentences,omitempty"`
}

// Text joins the paragraph's sentence texts with single spaces
func (p Paragraph) Text() string {
	return joinSentences(p.Sentences)
}

// IsHeader reports whether the paragraph is a bare section header
func (p Paragraph) IsHeader() bool {
	return p.Header != "" && len(p.Sentences) == 0
}

// HighlightKind classifies a highlight span
type HighlightKind string

const (
	HighlightAbbreviation HighlightKind = "abbreviation"
	HighlightStatistic    HighlightKind = "statistic"
	HighlightMeasurement  HighlightKind = "measurement"
)

// HighlightSpan marks a range of a paragraph's rendered text for
// emphasis. Offsets are byte offsets into the paragraph text.
type HighlightSpan struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Kind  HighlightKind `json:"kind"`
}

// SectionHeader is an explicit structural label found in the input
type SectionHeader struct {
	Label    string `json:"label"`    // Normalized label (e.g., "METHODS")
	Text     string `json:"text"`     // Raw matched text including punctuation
	Position int    `json:"position"` // Byte offset into the input
}

// Structure is the result of structural analysis of an abstract
type Structure struct {
	TotalLength           int             `json:"total_length"`
	WordCount             int             `json:"word_count"`
	SentenceCount         int             `json:"sentence_count"`
	TechnicalTerms        []string        `json:"technical_terms,omitempty"`
	Measurements          []string        `json:"measurements,omitempty"`
	Headers               []SectionHeader `json:"section_headers,omitempty"`
	HasStructuredSections bool            `json:"has_structured_sections"`
}
