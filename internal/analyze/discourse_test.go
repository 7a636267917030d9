package analyze

import (
	"testing"

	"github.com/citemed/abstractfmt/internal/model"
)

func TestClassify_Categories(t *testing.T) {
	cases := []struct {
		text string
		want model.DiscourseCategory
	}{
		{"However, the results were inconclusive.", model.DiscourseContrast},
		{"Nevertheless the trend held.", model.DiscourseContrast},
		{"But the effect vanished at scale.", model.DiscourseContrast},
		{"In contrast, the control group improved.", model.DiscourseContrast},
		{"Additionally, we measured response times.", model.DiscourseAddition},
		{"Moreover, the model generalized well.", model.DiscourseAddition},
		{"Therefore, the hypothesis was rejected.", model.DiscourseResult},
		{"Thus the protocol was revised.", model.DiscourseResult},
		{"As a result, enrollment doubled.", model.DiscourseResult},
		{"First, samples were collected.", model.DiscourseSequence},
		{"Finally, the cohort was unblinded.", model.DiscourseSequence},
		{"The patients were randomized.", model.DiscourseNone},
		{"", model.DiscourseNone},
	}

	for _, c := range cases {
		if got := Classify(c.text); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("HOWEVER, the assay failed."); got != model.DiscourseContrast {
		t.Errorf("Expected contrast for uppercase marker, got %s", got)
	}
	if got := Classify("therefore the dose was reduced."); got != model.DiscourseResult {
		t.Errorf("Expected result for lowercase marker, got %s", got)
	}
}

func TestClassify_RequiresWordBoundary(t *testing.T) {
	// "Thusly" must not match "thus", "Butter" must not match "but".
	if got := Classify("Thusly spoke the reviewer."); got != model.DiscourseNone {
		t.Errorf("Expected none for 'Thusly', got %s", got)
	}
	if got := Classify("Butter content was measured."); got != model.DiscourseNone {
		t.Errorf("Expected none for 'Butter', got %s", got)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "but" (contrast) appears before any other category is checked;
	// a sentence starting with a contrast marker never falls through.
	if got := Classify("But then the signal returned."); got != model.DiscourseContrast {
		t.Errorf("Expected contrast to win, got %s", got)
	}
}

func TestClassifyAll_AssignsInPlace(t *testing.T) {
	records := []model.SentenceRecord{
		{Text: "We enrolled ninety patients."},
		{Text: "However, twelve withdrew."},
	}
	records = ClassifyAll(records)
	if records[0].Category != model.DiscourseNone {
		t.Errorf("Expected none for first record, got %s", records[0].Category)
	}
	if records[1].Category != model.DiscourseContrast {
		t.Errorf("Expected contrast for second record, got %s", records[1].Category)
	}
}
