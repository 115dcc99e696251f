package templates

import "testing"

func TestFillBindsEveryPlaceholder(t *testing.T) {
	tmpl := Template{
		Pattern:        "What happens when {graha} is placed in the {bhava} house?",
		AnswerGuidance: "Describe {graha} effects",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	}
	q, g, err := tmpl.Fill(map[string]string{"graha": "Śani", "bhava": "7th"})
	if err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if q != "What happens when Śani is placed in the 7th house?" {
		t.Fatalf("unexpected question: %q", q)
	}
	if g != "Describe Śani effects" {
		t.Fatalf("unexpected guidance: %q", g)
	}
}

func TestFillMissingPlaceholderFails(t *testing.T) {
	tmpl := Template{Pattern: "What is {graha} in {rashi}?"}
	if _, _, err := tmpl.Fill(map[string]string{"graha": "Guru"}); err == nil {
		t.Fatalf("expected error for unbound placeholder")
	}
	if _, _, err := tmpl.Fill(map[string]string{"graha": "Guru", "rashi": ""}); err == nil {
		t.Fatalf("expected error for empty placeholder value")
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("How does {graha} behave in {bhava} during {graha} daśā?")
	want := []string{"graha", "bhava"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
}

func TestLibraryTemplatesAreWellFormed(t *testing.T) {
	sets := [][]Template{
		GrahaBasic, GrahaBhavaPlacement, GrahaRashiPlacement, GrahaDignity,
		GrahaDasha, GrahaAspects, GrahaConjunction, BhavaBasic, BhavaLordship,
		BhavaPrediction, RashiBasic, RashiLagna, YogaDefinition, YogaApplication,
	}
	for _, set := range sets {
		if len(set) == 0 {
			t.Fatalf("empty template set")
		}
		for _, tmpl := range set {
			if tmpl.Pattern == "" || tmpl.QAType == "" || tmpl.Difficulty == "" {
				t.Fatalf("incomplete template: %+v", tmpl)
			}
		}
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th"}
	for n, want := range cases {
		if got := Ordinal(n); got != want {
			t.Fatalf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}
