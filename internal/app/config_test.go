package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.MinQuestionLength != 20 || cfg.MinAnswerLength != 30 || cfg.MinAnswerWords != 10 {
		t.Fatalf("unexpected quality defaults: %+v", cfg)
	}
	if cfg.SimilarityThreshold != 0.85 || cfg.RecencyWindow != 1000 {
		t.Fatalf("unexpected dedup defaults: %+v", cfg)
	}
	if cfg.PatternCeiling != 0.15 || cfg.PatternFloor != 0.05 || cfg.BalanceSeed != 42 {
		t.Fatalf("unexpected diversity defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestApplyFileOverlays(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	body := "min_question_length: 25\nsimilarity_threshold: 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := LoadConfig()
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.MinQuestionLength != 25 {
		t.Fatalf("overlay ignored: %d", cfg.MinQuestionLength)
	}
	if cfg.SimilarityThreshold != 0.9 {
		t.Fatalf("overlay ignored: %v", cfg.SimilarityThreshold)
	}
	// Untouched keys keep their defaults.
	if cfg.MinAnswerWords != 10 {
		t.Fatalf("unrelated key changed: %d", cfg.MinAnswerWords)
	}
}

func TestApplyFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("similarity_threshold: 3.0\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg := LoadConfig()
	if err := cfg.ApplyFile(path); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := cfg.ApplyFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := LoadConfig()
	cfg.PatternFloor = 0.2 // above ceiling
	if err := cfg.Validate(); err == nil {
		t.Fatalf("floor above ceiling must fail")
	}
	cfg = LoadConfig()
	cfg.ChunkOverlap = cfg.ChunkSize
	if err := cfg.Validate(); err == nil {
		t.Fatalf("overlap >= chunk size must fail")
	}
}
