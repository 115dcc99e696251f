package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/vedicqa/internal/platform/logger"
)

func TestCleanTextFixesSplitDiacritics(t *testing.T) {
	in := "The s´a ̄stra describes Ra ̄hu.\n\n\n\n42\nPage 7 of 300\nNext line."
	out := CleanText(in)
	if !strings.Contains(out, "śāstra") {
		t.Fatalf("diacritics not repaired: %q", out)
	}
	if strings.Contains(out, "Page 7") {
		t.Fatalf("page header survived: %q", out)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Fatalf("newline runs not collapsed: %q", out)
	}
}

func TestSplitSentencesHandlesDanda(t *testing.T) {
	text := "First sentence here. Second one follows! Third ends with daṇḍa। Fourth?"
	got := SplitSentences(text)
	if len(got) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[2], "Third") {
		t.Fatalf("daṇḍa boundary missed: %v", got)
	}
}

func TestDetectSectionsSplitsOnChapters(t *testing.T) {
	text := "Chapter 1 Grahas\nThe planets are nine in number and govern all affairs.\nChapter 2 Rashis\nThe signs are twelve and map the zodiac belt."
	sections := DetectSections([]string{text})
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if !strings.Contains(sections[0].Title, "Chapter 1") {
		t.Fatalf("first section title wrong: %q", sections[0].Title)
	}
	if sections[0].Type != TypeConcept {
		t.Fatalf("prose section classified as %q", sections[0].Type)
	}
}

func TestChunkSectionsRespectsSizeAndOverlap(t *testing.T) {
	sentence := "The graha Śani rules discipline and delay in every chart it touches. "
	sec := Section{
		Title:   "Test",
		Content: strings.Repeat(sentence, 40),
		Type:    TypeConcept,
	}
	c := NewChunker(500, 100, 100)
	chunks := c.ChunkSections([]Section{sec}, "doc.txt")
	if len(chunks) < 2 {
		t.Fatalf("long section should split, got %d chunks", len(chunks))
	}
	for _, ch := range chunks {
		if len(ch.Text) < 100 {
			t.Fatalf("chunk under minimum size: %d", len(ch.Text))
		}
		if len(ch.Entities) == 0 {
			t.Fatalf("entities not tagged on chunk")
		}
	}
	// Consecutive chunks share overlap text.
	first := chunks[0].Text
	second := chunks[1].Text
	tail := first[len(first)-40:]
	if !strings.Contains(second, strings.TrimSpace(tail)) {
		t.Fatalf("no overlap between consecutive chunks")
	}
}

func TestShortSectionSingleChunk(t *testing.T) {
	c := NewChunker(1000, 100, 100)
	sections := []Section{
		{Title: "A", Content: strings.Repeat("Lagna lords matter greatly here. ", 5), Type: TypeConcept},
		{Title: "B", Content: "too small", Type: TypeConcept},
	}
	chunks := c.ChunkSections(sections, "doc.txt")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].SectionTitle != "A" {
		t.Fatalf("wrong section survived: %q", chunks[0].SectionTitle)
	}
}

func TestDetectEntities(t *testing.T) {
	text := "When Śani aspects the lagna, the graha delays results; Rāhu amplifies them."
	entities := DetectEntities(text)
	if len(entities) == 0 {
		t.Fatalf("expected entities")
	}
	has := func(want string) bool {
		for _, e := range entities {
			if strings.EqualFold(e, want) {
				return true
			}
		}
		return false
	}
	if !has("lagna") || !has("graha") {
		t.Fatalf("core terms missed: %v", entities)
	}
	seen := map[string]bool{}
	for _, e := range entities {
		if seen[e] {
			t.Fatalf("duplicate entity %q", e)
		}
		seen[e] = true
	}
}

func TestDetectEntitiesUsesKnowledgeNames(t *testing.T) {
	text := "Saturn rules structure, and the makara sign rewards patience."
	entities := DetectEntities(text)
	has := func(want string) bool {
		for _, e := range entities {
			if e == want {
				return true
			}
		}
		return false
	}
	if !has("saturn") || !has("makara") {
		t.Fatalf("knowledge names not tagged: %v", entities)
	}
}

func TestTextFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	page1 := "Chapter 1 Grahas\n" + strings.Repeat("The nine grahas govern karma and its unfolding in the chart. ", 5)
	page2 := "Chapter 2 Bhavas\n" + strings.Repeat("The twelve bhavas map life areas onto the zodiac wheel. ", 5)
	if err := os.WriteFile(path, []byte(page1+"\f"+page2), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewTextFileSource(path, NewChunker(1000, 100, 100), logger.Nop())
	chunks, err := src.Chunks()
	if err != nil {
		t.Fatalf("chunks: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected chunks from both pages, got %d", len(chunks))
	}
	for _, ch := range chunks {
		if ch.Document == "" {
			t.Fatalf("chunk missing document name")
		}
	}
	if _, err := NewTextFileSource(filepath.Join(dir, "missing.txt"), NewChunker(1000, 100, 100), logger.Nop()).Chunks(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
