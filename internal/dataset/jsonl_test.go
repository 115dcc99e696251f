package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONLKeepsDiacriticsLiteral(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONL(&buf, []Record{{
		ID:       "x",
		Question: "What is Śani's dṛṣṭi?",
		Answer:   "Śani aspects the 3rd, 7th & 10th houses.",
		Tags:     []string{"śani"},
	}})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Śani") || !strings.Contains(out, "dṛṣṭi") {
		t.Fatalf("diacritics escaped: %s", out)
	}
	if strings.Contains(out, `&`) {
		t.Fatalf("ampersand was HTML-escaped: %s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"id":"a","question":"What is the lagna?","answer":"The rising sign.","qa_type":"definition","difficulty":"easy","tags":[],"source":{"type":"t"},"generation_method":"template"}`,
		`{not json`,
		``,
		`{"id":"b","question":"q","answer":"a","qa_type":"x","difficulty":"easy","tags":[],"source":{"type":"t"},"generation_method":"template"}`,
	}, "\n")

	records, skipped, err := ReadJSONL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped line, got %d", skipped)
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Fatalf("order lost: %v", records)
	}
}

func TestWriteReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.jsonl")

	in := []Record{
		{ID: "a", Question: "Q1 about graha?", Answer: "A1", Tags: []string{"t"}, Source: Source{Type: "template"}, GenerationMethod: MethodTemplate},
		{ID: "b", Question: "Q2 about bhāva?", Answer: "A2", Augmentation: &AugmentationMeta{Type: "synonym", OriginalID: "a"}},
	}
	if err := WriteJSONLFile(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, skipped, err := ReadJSONLFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 0 || len(out) != 2 {
		t.Fatalf("round trip lost data: %d records, %d skipped", len(out), skipped)
	}
	if out[1].Augmentation == nil || out[1].Augmentation.OriginalID != "a" {
		t.Fatalf("augmentation metadata lost: %+v", out[1])
	}
}

func TestRemovedPath(t *testing.T) {
	cases := map[string]string{
		"out.jsonl":         "out.removed.jsonl",
		"dir/dataset.jsonl": "dir/dataset.removed.jsonl",
		"noext":             "noext.removed.jsonl",
	}
	for in, want := range cases {
		if got := RemovedPath(in); got != want {
			t.Fatalf("RemovedPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Record{
		ID:           "a",
		Tags:         []string{"one"},
		Augmentation: &AugmentationMeta{Type: "synonym"},
	}
	cp := orig.Clone()
	cp.Tags[0] = "changed"
	cp.Augmentation.Type = "changed"
	if orig.Tags[0] != "one" || orig.Augmentation.Type != "synonym" {
		t.Fatalf("clone shares memory with original: %+v", orig)
	}
}
