package knowledge

import "testing"

func TestGraphCounts(t *testing.T) {
	g := NewGraph()
	if got := len(g.GrahaKeys()); got != 9 {
		t.Fatalf("expected 9 grahas, got %d", got)
	}
	if got := len(g.RashiKeys()); got != 12 {
		t.Fatalf("expected 12 rashis, got %d", got)
	}
	if got := len(g.BhavaNumbers()); got != 12 {
		t.Fatalf("expected 12 bhavas, got %d", got)
	}
	if g.Nakshatra(1) == nil || g.Nakshatra(27) == nil || g.Nakshatra(28) != nil {
		t.Fatalf("expected exactly 27 nakshatras")
	}
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	g := NewGraph()
	if g.Graha("SURYA") == nil || g.Graha("Surya") == nil {
		t.Fatalf("graha lookup should be case-insensitive")
	}
	if g.Rashi("MESHA") == nil {
		t.Fatalf("rashi lookup should be case-insensitive")
	}
	if g.Graha("pluto") != nil {
		t.Fatalf("unknown key should return nil")
	}
}

func TestGrahaDataComplete(t *testing.T) {
	g := NewGraph()
	for _, key := range g.GrahaKeys() {
		gr := g.Graha(key)
		if gr.Sanskrit == "" || gr.English == "" || gr.Nature == "" {
			t.Fatalf("graha %s missing core fields", key)
		}
		if len(gr.Significations) == 0 {
			t.Fatalf("graha %s has no significations", key)
		}
	}
	// The nodes have no dasha of their own sign but still carry dignity signs.
	rahu := g.Graha("rahu")
	if rahu.Exaltation.Sign == "" {
		t.Fatalf("rahu missing exaltation sign")
	}
	if rahu.Exaltation.Exact {
		t.Fatalf("rahu exaltation should carry no exact degree")
	}
	if sani := g.Graha("shani"); sani.DashaYears != 19 {
		t.Fatalf("shani dasha years = %d, want 19", sani.DashaYears)
	}
}

func TestBhavaOrderAndNumbers(t *testing.T) {
	g := NewGraph()
	for i, num := range g.BhavaNumbers() {
		if num != i+1 {
			t.Fatalf("bhava numbers out of order: %v", g.BhavaNumbers())
		}
		bh := g.Bhava(num)
		if len(bh.Significations) == 0 || len(bh.PredictionAreas) == 0 {
			t.Fatalf("bhava %d incomplete", num)
		}
	}
}

func TestLexiconDeduplicatesAndCoversCore(t *testing.T) {
	g := NewGraph()
	lex := g.Lexicon()
	seen := map[string]bool{}
	for _, term := range lex {
		low := term
		if seen[low] {
			t.Fatalf("duplicate lexicon term %q", term)
		}
		seen[low] = true
	}
	for _, want := range []string{"surya", "Sun", "mesha", "lagna", "nakshatra"} {
		found := false
		for _, term := range lex {
			if term == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("lexicon missing %q", want)
		}
	}
}
