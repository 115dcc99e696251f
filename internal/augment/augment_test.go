package augment

import (
	"strings"
	"testing"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/platform/logger"
)

func TestAugmentPairProducesDistinctQuestions(t *testing.T) {
	a := NewAugmenter(42, logger.Nop())
	pairs := a.AugmentPair(
		"What is the effects of guru in the fourth house?",
		"Guru expands the significations of the fourth bhāva for the native.",
		"orig1", 2)
	if len(pairs) == 0 {
		t.Fatalf("expected augmentations")
	}
	if len(pairs) > 2 {
		t.Fatalf("requested 2, got %d", len(pairs))
	}
	seen := map[string]bool{"what is the effects of guru in the fourth house?": true}
	for _, p := range pairs {
		low := strings.ToLower(p.Question)
		if seen[low] {
			t.Fatalf("duplicate question %q", p.Question)
		}
		seen[low] = true
		if p.OriginalID != "orig1" {
			t.Fatalf("original id lost: %+v", p)
		}
		if p.Type == "" || p.Details == "" {
			t.Fatalf("metadata missing: %+v", p)
		}
	}
}

func TestAugmenterSeedReproducible(t *testing.T) {
	run := func() []Pair {
		a := NewAugmenter(7, logger.Nop())
		return a.AugmentPair(
			"What is the strong yoga formed by guru?",
			"A powerful combination arises when guru occupies a kendra house.",
			"x", 4)
	}
	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Question != second[i].Question || first[i].Type != second[i].Type {
			t.Fatalf("runs diverge at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestQuestionTransform(t *testing.T) {
	a := NewAugmenter(42, logger.Nop())
	p := a.questionTransform("What is kemadruma yoga?", "An affliction of the Moon.", "id1")
	if p == nil {
		t.Fatalf("expected a transform for a what-is question")
	}
	if p.Type != TypeQuestionTransform {
		t.Fatalf("wrong type %q", p.Type)
	}
	if strings.EqualFold(p.Question, "What is kemadruma yoga?") {
		t.Fatalf("question unchanged: %q", p.Question)
	}
	if got := a.questionTransform("Name the twelve rashis.", "…", "id2"); got != nil {
		t.Fatalf("unexpected transform for unsupported shape: %+v", got)
	}
}

func TestAugmentDatasetIDsAndMetadata(t *testing.T) {
	a := NewAugmenter(42, logger.Nop())
	records := []dataset.Record{{
		ID:               "base1",
		Question:         "What is the effects of śani daśā?",
		Answer:           "Śani daśā brings discipline and delays across nineteen years.",
		GenerationMethod: dataset.MethodTemplate,
	}}
	out := a.AugmentDataset(records, 2)

	if len(out) < 2 {
		t.Fatalf("expected originals plus augmented, got %d", len(out))
	}
	if out[0].ID != "base1" || out[0].Augmentation != nil {
		t.Fatalf("original not preserved first: %+v", out[0])
	}
	for _, rec := range out[1:] {
		if !strings.HasPrefix(rec.ID, "base1_aug_") {
			t.Fatalf("bad augmented id %q", rec.ID)
		}
		if rec.GenerationMethod != dataset.MethodAugmented {
			t.Fatalf("method not marked: %+v", rec)
		}
		if rec.Augmentation == nil || rec.Augmentation.OriginalID != "base1" {
			t.Fatalf("augmentation metadata missing: %+v", rec)
		}
		if !strings.HasSuffix(rec.ID, rec.Augmentation.Type) {
			t.Fatalf("id suffix %q does not match type %q", rec.ID, rec.Augmentation.Type)
		}
	}
}

func TestEnhancerSkipsLongAnswers(t *testing.T) {
	e := NewEnhancer(knowledge.NewGraph())
	long := strings.Repeat("Already a thorough answer about grahas. ", 6)
	if got := e.Enhance(long, "What about surya?", 100); got != long {
		t.Fatalf("long answer should pass through unchanged")
	}
}

func TestEnhancerAddsContextForShortAnswers(t *testing.T) {
	e := NewEnhancer(knowledge.NewGraph())
	answer := "It burns away obstacles."
	got := e.Enhance(answer, "How does surya act in the chart?", 200)
	if got == answer {
		t.Fatalf("expected added context")
	}
	if !strings.HasPrefix(got, answer) {
		t.Fatalf("original answer must stay first: %q", got)
	}
	if !strings.Contains(got, "Sūrya") {
		t.Fatalf("graha context missing: %q", got)
	}
}

func TestEnhanceDatasetRewritesOnlyShortAnswers(t *testing.T) {
	e := NewEnhancer(knowledge.NewGraph())
	records := []dataset.Record{
		{ID: "short", Question: "How does surya act in the chart?", Answer: "It burns away obstacles."},
		{ID: "long", Question: "How does surya act in the chart?", Answer: strings.Repeat("Already detailed. ", 20)},
		{ID: "plain", Question: "Completely unrelated question?", Answer: "Short and generic."},
	}
	longBefore := records[1].Answer

	changed := e.EnhanceDataset(records, DefaultMaxAddition)
	if changed != 1 {
		t.Fatalf("expected 1 changed record, got %d", changed)
	}
	if !strings.Contains(records[0].Answer, "Sūrya") {
		t.Fatalf("short answer not enhanced: %q", records[0].Answer)
	}
	if records[1].Answer != longBefore {
		t.Fatalf("long answer must not change")
	}
	if records[2].Answer != "Short and generic." {
		t.Fatalf("entity-free answer must not change: %q", records[2].Answer)
	}
}

func TestEnhancerNoEntitiesNoChange(t *testing.T) {
	e := NewEnhancer(knowledge.NewGraph())
	answer := "Short and generic."
	if got := e.Enhance(answer, "Completely unrelated question?", 200); got != answer {
		t.Fatalf("no entities should mean no additions: %q", got)
	}
}
