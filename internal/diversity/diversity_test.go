package diversity

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/yungbote/vedicqa/internal/dataset"
)

func q(question string) dataset.Record {
	return dataset.Record{ID: question, Question: question, Answer: "a"}
}

// skewedSet is 100 records: 80 "What is the", 5 each across 4 stems.
func skewedSet() []dataset.Record {
	var records []dataset.Record
	for i := 0; i < 80; i++ {
		records = append(records, q(fmt.Sprintf("What is the signification of item %d?", i)))
	}
	for i := 0; i < 5; i++ {
		records = append(records, q(fmt.Sprintf("How does planet %d act?", i)))
		records = append(records, q(fmt.Sprintf("Why is house %d important?", i)))
		records = append(records, q(fmt.Sprintf("Compare sign %d with its lord.", i)))
		records = append(records, q(fmt.Sprintf("Predict results for chart %d.", i)))
	}
	return records
}

func TestClassifyOrder(t *testing.T) {
	cases := map[string]string{
		"What is the role of Śani?":          "what_is",
		"What are the kendra houses?":        "what_are",
		"What does Guru signify?":            "what_does",
		"How does Budha act in Kanyā?":       "how_does",
		"If the lagna lord is debilitated, what happens?": "conditional",
		"Completely freeform question":                    PatternOther,
	}
	for question, want := range cases {
		if got := Classify(question); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", question, got, want)
		}
	}
}

func TestRatiosSumToOneAndScoreInRange(t *testing.T) {
	a := NewAnalyzer(0.15, 0.05)
	rep := a.Analyze(skewedSet())

	sum := 0.0
	for _, r := range rep.PatternRatios {
		sum += r
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("ratios sum %f, want 1.0", sum)
	}
	if rep.DiversityScore < 0 || rep.DiversityScore > 1 {
		t.Fatalf("diversity score %f out of range", rep.DiversityScore)
	}
}

func TestSkewedSetAnalysis(t *testing.T) {
	a := NewAnalyzer(0.15, 0.05)
	rep := a.Analyze(skewedSet())

	ratio, ok := rep.OverRepresented["what_is"]
	if !ok {
		t.Fatalf("expected what_is over-represented: %v", rep.OverRepresented)
	}
	if math.Abs(ratio-0.80) > 1e-9 {
		t.Fatalf("what_is ratio %f, want 0.80", ratio)
	}
}

func TestBalanceSkewedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kept, removed := Balance(skewedSet(), 0.15, rng)

	if len(kept) != 35 {
		t.Fatalf("expected 35 kept, got %d", len(kept))
	}
	if len(removed) != 65 {
		t.Fatalf("expected 65 removed, got %d", len(removed))
	}
	counts := map[string]int{}
	for _, r := range kept {
		counts[Classify(r.Question)]++
	}
	if counts["what_is"] != 15 {
		t.Fatalf("expected what_is bucket 15, got %d", counts["what_is"])
	}
}

func TestBalanceNeverGrowsOrMutates(t *testing.T) {
	records := skewedSet()
	before := map[string]int{}
	for _, r := range records {
		before[Classify(r.Question)]++
	}

	rng := rand.New(rand.NewSource(7))
	kept, removed := Balance(records, 0.15, rng)

	after := map[string]int{}
	seen := map[string]bool{}
	for _, r := range kept {
		after[Classify(r.Question)]++
		seen[r.ID] = true
	}
	for name, n := range after {
		if n > before[name] {
			t.Fatalf("bucket %q grew from %d to %d", name, before[name], n)
		}
	}
	// Every output record is one of the inputs, untouched.
	for _, r := range append(kept, removed...) {
		if r.Question != r.ID {
			t.Fatalf("record content changed: %+v", r)
		}
	}
	if len(kept)+len(removed) != len(records) {
		t.Fatalf("records lost: %d + %d != %d", len(kept), len(removed), len(records))
	}
}

func TestBalanceToCapIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	once, _ := BalanceToCap(skewedSet(), 15, rng)
	twice, removed := BalanceToCap(once, 15, rng)

	if len(removed) != 0 {
		t.Fatalf("second pass removed %d records", len(removed))
	}
	if len(twice) != len(once) {
		t.Fatalf("second pass changed size %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestBalanceSeedReproducible(t *testing.T) {
	a, _ := Balance(skewedSet(), 0.15, rand.New(rand.NewSource(42)))
	b, _ := Balance(skewedSet(), 0.15, rand.New(rand.NewSource(42)))
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("sampled sets differ at %d", i)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	a := NewAnalyzer(0.15, 0.05)
	rep := a.Analyze(nil)
	if rep.Total != 0 || rep.DiversityScore != 0 {
		t.Fatalf("unexpected report for empty input: %+v", rep)
	}
	kept, removed := Balance(nil, 0.15, rand.New(rand.NewSource(1)))
	if kept != nil || removed != nil {
		t.Fatalf("expected nil outputs for empty input")
	}
}
