package highlight

import (
	"strings"
	"testing"

	"github.com/citemed/abstractfmt/internal/model"
)

func spanText(text string, s model.HighlightSpan) string {
	return text[s.Start:s.End]
}

func findKind(spans []model.HighlightSpan, kind model.HighlightKind) []model.HighlightSpan {
	var out []model.HighlightSpan
	for _, s := range spans {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestFind_Abbreviation(t *testing.T) {
	text := "Magnetic resonance imaging (MRI) was used throughout."
	spans := findKind(Find(text), model.HighlightAbbreviation)

	if len(spans) != 1 {
		t.Fatalf("Expected 1 abbreviation span, got %d", len(spans))
	}
	// The span covers exactly the token, not the parentheses.
	if got := spanText(text, spans[0]); got != "MRI" {
		t.Errorf("Expected span to cover MRI, got %q", got)
	}
}

func TestFind_AbbreviationLengthBounds(t *testing.T) {
	// Single letters and over-long tokens are not abbreviations.
	for _, text := range []string{"A grade (A) was assigned.", "The code (ABCDEFG) is internal."} {
		if spans := findKind(Find(text), model.HighlightAbbreviation); len(spans) != 0 {
			t.Errorf("Expected no abbreviation spans in %q, got %d", text, len(spans))
		}
	}
}

func TestFind_Statistic(t *testing.T) {
	text := "Accuracy reached 95% with p < 0.05 in n = 120 patients."
	spans := findKind(Find(text), model.HighlightStatistic)

	var texts []string
	for _, s := range spans {
		texts = append(texts, spanText(text, s))
	}
	joined := strings.Join(texts, " | ")
	for _, want := range []string{"95%", "p < 0.05", "n = 120"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected statistic span %q, got %v", want, texts)
		}
	}
}

func TestFind_Measurement(t *testing.T) {
	text := "Patients received 20 mg daily at 37 °C."
	spans := findKind(Find(text), model.HighlightMeasurement)

	var texts []string
	for _, s := range spans {
		texts = append(texts, spanText(text, s))
	}
	joined := strings.Join(texts, " | ")
	if !strings.Contains(joined, "20 mg") {
		t.Errorf("Expected 20 mg measurement, got %v", texts)
	}
}

func TestFind_UnitNotSwallowedByWords(t *testing.T) {
	// "5 samples" is not a measurement; "s" must not match inside a word.
	text := "We took 5 samples in total."
	for _, s := range findKind(Find(text), model.HighlightMeasurement) {
		t.Errorf("Unexpected measurement span %q", spanText(text, s))
	}
}

func TestFind_SortedByStart(t *testing.T) {
	spans := Find("Dose was 20 mg and response hit 40% at week 6.")
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Fatalf("Spans not sorted by start: %+v", spans)
		}
	}
}

func TestFind_Deterministic(t *testing.T) {
	text := "Sensitivity was 94% (CI) at 3 T with p < 0.01."
	a := Find(text)
	b := Find(text)
	if len(a) != len(b) {
		t.Fatalf("Expected identical span counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Span %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFind_IdempotentOverStrippedMarkup(t *testing.T) {
	// Highlighting plain output with markup stripped yields the same
	// spans as highlighting the original text.
	text := "Response reached 42% under 20 mg dosing (MRI)."
	original := Find(text)

	// Simulate a render-then-strip round trip.
	stripped := strings.ReplaceAll("Response reached **42%** under **20 mg** dosing (**MRI**).", "**", "")
	again := Find(stripped)

	if len(original) != len(again) {
		t.Fatalf("Expected %d spans after round trip, got %d", len(original), len(again))
	}
	for i := range original {
		if original[i] != again[i] {
			t.Errorf("Span %d changed after round trip: %+v vs %+v", i, original[i], again[i])
		}
	}
}

func TestFind_NoMatches(t *testing.T) {
	if spans := Find("Plain prose without figures or units."); len(spans) != 0 {
		t.Errorf("Expected no spans, got %d", len(spans))
	}
}
