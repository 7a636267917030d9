package analyze

import (
	"fmt"
	"strings"

	"github.com/citemed/abstractfmt/internal/model"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// PunktAnalyzer is the fallback analyzer: Punkt sentence boundary
// detection only, no entity recognition. Entity-shift segmentation
// degrades gracefully to the remaining triggers.
type PunktAnalyzer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktAnalyzer loads the embedded English Punkt training data
func NewPunktAnalyzer() (*PunktAnalyzer, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: loading punkt training data: %v", model.ErrModelUnavailable, err)
	}
	return &PunktAnalyzer{tokenizer: tok}, nil
}

// Analyze segments text into sentences with empty entity sets
func (a *PunktAnalyzer) Analyze(text string) ([]model.SentenceRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var sents []string
	for _, s := range a.tokenizer.Tokenize(text) {
		sents = append(sents, s.Text)
	}
	return buildRecords(text, sents), nil
}
