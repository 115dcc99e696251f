package generate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/extract"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/templates"
)

func TestEveryComboFillsItsTemplate(t *testing.T) {
	g := NewGenerator(knowledge.NewGraph())
	for _, combo := range g.All(0) {
		q, _, err := combo.Template.Fill(combo.Params)
		if err != nil {
			t.Fatalf("combo %q: %v", combo.Template.Pattern, err)
		}
		if strings.Contains(q, "{") {
			t.Fatalf("unfilled placeholder in %q", q)
		}
	}
}

func TestConjunctionPairCount(t *testing.T) {
	g := NewGenerator(knowledge.NewGraph())
	combos := g.ConjunctionCombinations(0)

	perTemplate := len(templates.GrahaConjunction)
	// 9 grahas -> C(9,2) = 36 unordered pairs.
	if want := 36 * perTemplate; len(combos) != want {
		t.Fatalf("expected %d conjunction combos, got %d", want, len(combos))
	}
	seen := map[string]bool{}
	for _, c := range combos {
		if c.GrahaKey == c.Graha2Key {
			t.Fatalf("graha paired with itself: %s", c.GrahaKey)
		}
		key := c.GrahaKey + "|" + c.Graha2Key + "|" + c.Template.Pattern
		if seen[key] {
			t.Fatalf("duplicate pair %s", key)
		}
		seen[key] = true
	}
}

func TestMaxPerStrategyTruncates(t *testing.T) {
	g := NewGenerator(knowledge.NewGraph())
	combos := g.GrahaCombinations(10)
	if len(combos) != 10 {
		t.Fatalf("expected 10 combos, got %d", len(combos))
	}
	full := g.GrahaCombinations(0)
	for i := range combos {
		if combos[i].Template.Pattern != full[i].Template.Pattern {
			t.Fatalf("truncation changed enumeration order at %d", i)
		}
	}
}

func TestRenderProducesCompleteRecord(t *testing.T) {
	graph := knowledge.NewGraph()
	g := NewGenerator(graph)
	r := NewRenderer(graph, 30)

	combos := g.All(0)
	rendered := 0
	for _, combo := range combos {
		rec, err := r.Render(combo)
		if err != nil {
			continue
		}
		rendered++
		if rec.ID == "" || rec.Question == "" || rec.Answer == "" {
			t.Fatalf("incomplete record: %+v", rec)
		}
		if rec.QAType == "" || rec.Difficulty == "" {
			t.Fatalf("missing classification on %s", rec.ID)
		}
		if rec.GenerationMethod != dataset.MethodTemplate {
			t.Fatalf("unexpected method %q", rec.GenerationMethod)
		}
		if len(rec.Answer) < 30 {
			t.Fatalf("short answer slipped through: %q", rec.Answer)
		}
	}
	if rendered == 0 {
		t.Fatalf("nothing rendered from %d combos", len(combos))
	}
}

func TestRenderIDsStableWithinRun(t *testing.T) {
	graph := knowledge.NewGraph()
	g := NewGenerator(graph)
	r := NewRenderer(graph, 30)

	combo := g.GrahaCombinations(1)[0]
	a, err := r.Render(combo)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := r.Render(combo)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("same combo produced different ids: %s vs %s", a.ID, b.ID)
	}

	other := NewRenderer(graph, 30)
	c, err := other.Render(combo)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if c.ID == a.ID {
		t.Fatalf("different runs should not share ids")
	}
}

func TestFromChunk(t *testing.T) {
	graph := knowledge.NewGraph()
	r := NewRenderer(graph, 30)

	long := strings.Repeat("The seventh bhāva governs marriage and partnership matters. ", 4)
	chunk := extract.Chunk{
		Text:      long,
		Document:  "bphs.txt",
		PageStart: 12,
		PageEnd:   13,
		Entities:  []string{"bhāva", "vivāha"},
	}
	rec := r.FromChunk(chunk)
	if rec == nil {
		t.Fatalf("expected a record")
	}
	if rec.GenerationMethod != dataset.MethodChunk {
		t.Fatalf("unexpected method %q", rec.GenerationMethod)
	}
	if !strings.Contains(rec.Question, "bhāva") {
		t.Fatalf("question should reference the lead entity: %q", rec.Question)
	}
	if rec.Source.Document != "bphs.txt" {
		t.Fatalf("source document lost: %+v", rec.Source)
	}

	if got := r.FromChunk(extract.Chunk{Text: "too short", Entities: []string{"x"}}); got != nil {
		t.Fatalf("short chunk should be skipped")
	}
	if got := r.FromChunk(extract.Chunk{Text: long}); got != nil {
		t.Fatalf("entity-less chunk should be skipped")
	}
}

func TestFromServicePair(t *testing.T) {
	r := NewRenderer(knowledge.NewGraph(), 30)

	rec := r.FromServicePair("What is lagna?", "The lagna is the rising sign.", "definition", "weird", "doc.txt", "test-model")
	if rec == nil {
		t.Fatalf("expected a record")
	}
	if rec.Difficulty != dataset.DifficultyMedium {
		t.Fatalf("invalid difficulty should default to medium, got %q", rec.Difficulty)
	}
	if rec.Source.Model != "test-model" {
		t.Fatalf("model not recorded: %+v", rec.Source)
	}
	if r.FromServicePair("", "answer", "", "", "d", "m") != nil {
		t.Fatalf("empty question should be rejected")
	}
}

func TestFromChunkTruncatesOnRuneBoundary(t *testing.T) {
	r := NewRenderer(knowledge.NewGraph(), 30)

	// A two-byte rune straddles the byte cap.
	text := strings.Repeat("a", 499) + strings.Repeat("ā", 40)
	chunk := extract.Chunk{
		Text:     text,
		Document: "bphs.txt",
		Entities: []string{"śani"},
	}
	rec := r.FromChunk(chunk)
	if rec == nil {
		t.Fatalf("expected a record")
	}
	if !utf8.ValidString(rec.Answer) {
		t.Fatalf("answer is not valid UTF-8: %q", rec.Answer[len(rec.Answer)-8:])
	}
	if len(rec.Answer) > 500 {
		t.Fatalf("answer exceeds cap: %d bytes", len(rec.Answer))
	}
	if rec.Answer != strings.Repeat("a", 499) {
		t.Fatalf("truncation cut at wrong boundary: %d bytes", len(rec.Answer))
	}
}

func TestFromServicePairTagsEntities(t *testing.T) {
	r := NewRenderer(knowledge.NewGraph(), 30)

	rec := r.FromServicePair("How does Śani act in the lagna?",
		"Śani in the lagna gives discipline but delays early life.",
		"interpretation", "medium", "doc.txt", "test-model")
	if rec == nil {
		t.Fatalf("expected a record")
	}
	if rec.Tags == nil {
		t.Fatalf("tags must never be nil")
	}
	found := false
	for _, tag := range rec.Tags {
		if tag == "lagna" {
			found = true
		}
	}
	if !found {
		t.Fatalf("detected entities missing from tags: %v", rec.Tags)
	}

	// No recognizable entities still yields an empty slice, not nil.
	plain := r.FromServicePair("What should a beginner read first?",
		"Start with the opening verses and work forward slowly.",
		"procedure", "easy", "doc.txt", "test-model")
	if plain == nil || plain.Tags == nil {
		t.Fatalf("tags must be an empty slice when nothing is detected")
	}
	if len(plain.Tags) != 0 {
		t.Fatalf("unexpected tags: %v", plain.Tags)
	}
}
