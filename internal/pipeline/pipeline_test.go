package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/citemed/abstractfmt/internal/model"
)

// fakeAnalyzer splits on terminal punctuation, with no entity
// recognition. Keeps pipeline tests independent of the NLP engine.
type fakeAnalyzer struct {
	entities map[string][]model.Entity // keyed by sentence text
}

var fakeSentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

func (f *fakeAnalyzer) Analyze(text string) ([]model.SentenceRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var records []model.SentenceRecord
	for _, loc := range fakeSentenceRe.FindAllStringIndex(text, -1) {
		sent := strings.TrimSpace(text[loc[0]:loc[1]])
		if sent == "" {
			continue
		}
		rec := model.SentenceRecord{
			Text:  sent,
			Start: loc[0],
			End:   loc[1],
		}
		if f.entities != nil {
			rec.Entities = f.entities[sent]
		}
		records = append(records, rec)
	}
	return records, nil
}

func newTestFormatter(cfg *model.Config) *Formatter {
	return NewWithAnalyzer(&fakeAnalyzer{}, cfg)
}

func testConfig(format string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Format.Output = format
	cfg.Cache.Enabled = false
	return cfg
}

func TestFormat_EmptyInputAllFormats(t *testing.T) {
	for _, format := range []string{model.FormatMarkdown, model.FormatHTML, model.FormatPlain} {
		f := newTestFormatter(testConfig(format))
		out, err := f.Format("")
		if err != nil {
			t.Errorf("%s: expected no error, got %v", format, err)
		}
		if out != "" {
			t.Errorf("%s: expected empty output, got %q", format, out)
		}
	}
}

func TestFormat_DiscourseTrigger(t *testing.T) {
	f := newTestFormatter(testConfig(model.FormatPlain))

	out, err := f.Format("We tested several approaches. However, the results were inconclusive.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	paragraphs := strings.Split(out, "\n\n")
	if len(paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d: %q", len(paragraphs), out)
	}
	if !strings.HasPrefix(paragraphs[1], "However,") {
		t.Errorf("Expected second paragraph to start with the marker, got %q", paragraphs[1])
	}
}

func TestFormat_ContentPreservation(t *testing.T) {
	input := "We enrolled ninety patients across four sites. However, twelve withdrew before week six. " +
		"Sensitivity reached 94% under (MRI) review. Specificity stayed near 88% in every cohort."

	f := newTestFormatter(testConfig(model.FormatMarkdown))
	out, err := f.Format(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stripped := strings.NewReplacer("**", "", "\n", " ").Replace(out)
	if wordMultiset(stripped) != wordMultiset(input) {
		t.Errorf("Word multiset changed:\n in: %q\nout: %q", input, stripped)
	}
}

func TestFormat_ParagraphCeiling(t *testing.T) {
	// More sentences than the ceiling, no other trigger.
	sentence := "The racks sat in cold storage until morning."
	input := strings.Repeat(sentence+" ", 7)

	f := newTestFormatter(testConfig(model.FormatPlain))
	out, err := f.Format(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "\n\n") {
		t.Errorf("Expected ceiling to produce more than one paragraph, got %q", out)
	}
}

func TestFormat_SectionHeaderMarkdown(t *testing.T) {
	input := "BACKGROUND: Dense abstracts strain working memory under review deadlines. " +
		"METHODS: We scanned one hundred twenty patients over two sessions each."

	f := newTestFormatter(testConfig(model.FormatMarkdown))
	out, err := f.Format(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "### BACKGROUND") {
		t.Errorf("Expected markdown header for BACKGROUND, got %q", out)
	}
	if !strings.Contains(out, "### METHODS") {
		t.Errorf("Expected markdown header for METHODS, got %q", out)
	}
}

func TestFormat_EntityShift(t *testing.T) {
	s1 := "The first arm received compound alpha from Novartis."
	s2 := "The second arm followed the Roche protocol instead."
	f := NewWithAnalyzer(&fakeAnalyzer{entities: map[string][]model.Entity{
		s1: {{Label: "ORG", Text: "Novartis"}},
		s2: {{Label: "ORG", Text: "Roche"}},
	}}, testConfig(model.FormatPlain))

	out, err := f.Format(s1 + " " + s2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "\n\n") {
		t.Errorf("Expected entity shift to split paragraphs, got %q", out)
	}
}

func TestFormat_CachedResultStable(t *testing.T) {
	cfg := testConfig(model.FormatMarkdown)
	cfg.Cache.Enabled = true
	f := newTestFormatter(cfg)

	input := "We enrolled ninety patients across four sites. However, twelve withdrew before week six."
	first, err := f.Format(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := f.Format(input)
	if err != nil {
		t.Fatalf("Expected no error on cached call, got %v", err)
	}
	if first != second {
		t.Errorf("Cached result differs:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestFormatAs_OverridesFormat(t *testing.T) {
	f := newTestFormatter(testConfig(model.FormatMarkdown))
	fc := f.FormatConfig()
	fc.Output = model.FormatHTML

	out, err := f.FormatAs("Sensitivity reached 94% under blinded review conditions.", fc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "<strong>") {
		t.Errorf("Expected html emphasis, got %q", out)
	}
}

func TestNew_UnknownEngine(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Analyzer.Engine = "mystery"
	if _, err := New(cfg); err == nil {
		t.Fatal("Expected error for unknown engine")
	}
}

func wordMultiset(s string) string {
	words := strings.Fields(s)
	sort.Strings(words)
	return strings.Join(words, " ")
}
