package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/vedicqa/internal/platform/envutil"
)

// Config carries every tunable the pipeline reads. Values come from
// env first, then an optional YAML file, then CLI flags, each layer
// overriding the previous one.
type Config struct {
	LogMode string `yaml:"log_mode"`

	// Quality thresholds.
	MinQuestionLength   int     `yaml:"min_question_length"`
	MinAnswerLength     int     `yaml:"min_answer_length"`
	MinAnswerWords      int     `yaml:"min_answer_words"`
	RepetitionNGram     int     `yaml:"repetition_ngram"`
	RepetitionMaxRatio  float64 `yaml:"repetition_max_ratio"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	RecencyWindow       int     `yaml:"recency_window"`

	// Diversity and balancing.
	PatternCeiling float64 `yaml:"pattern_ceiling"`
	PatternFloor   float64 `yaml:"pattern_floor"`
	BalanceSeed    int64   `yaml:"balance_seed"`

	// Generation caps (0 means no cap).
	MaxPerStrategy int `yaml:"max_per_strategy"`

	// Extraction.
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	ChunkMin     int `yaml:"chunk_min"`

	// Augmentation.
	AugmentationsPerItem int `yaml:"augmentations_per_item"`

	// Render worker fan-out.
	RenderWorkers int `yaml:"render_workers"`

	// Generation service (optional).
	GenServiceRPS   float64 `yaml:"gen_service_rps"`
	GenServiceBurst int     `yaml:"gen_service_burst"`

	// Run archive (optional sqlite file; empty disables archiving).
	ArchiveDB string `yaml:"archive_db"`
}

func LoadConfig() *Config {
	return &Config{
		LogMode:              envutil.String("VEDICQA_LOG_MODE", "dev"),
		MinQuestionLength:    envutil.Int("VEDICQA_MIN_QUESTION_LENGTH", 20),
		MinAnswerLength:      envutil.Int("VEDICQA_MIN_ANSWER_LENGTH", 30),
		MinAnswerWords:       envutil.Int("VEDICQA_MIN_ANSWER_WORDS", 10),
		RepetitionNGram:      envutil.Int("VEDICQA_REPETITION_NGRAM", 3),
		RepetitionMaxRatio:   envutil.Float("VEDICQA_REPETITION_MAX_RATIO", 0.5),
		SimilarityThreshold:  envutil.Float("VEDICQA_SIMILARITY_THRESHOLD", 0.85),
		RecencyWindow:        envutil.Int("VEDICQA_RECENCY_WINDOW", 1000),
		PatternCeiling:       envutil.Float("VEDICQA_PATTERN_CEILING", 0.15),
		PatternFloor:         envutil.Float("VEDICQA_PATTERN_FLOOR", 0.05),
		BalanceSeed:          envutil.Int64("VEDICQA_BALANCE_SEED", 42),
		MaxPerStrategy:       envutil.Int("VEDICQA_MAX_PER_STRATEGY", 0),
		ChunkSize:            envutil.Int("VEDICQA_CHUNK_SIZE", 1000),
		ChunkOverlap:         envutil.Int("VEDICQA_CHUNK_OVERLAP", 100),
		ChunkMin:             envutil.Int("VEDICQA_CHUNK_MIN", 100),
		AugmentationsPerItem: envutil.Int("VEDICQA_AUGMENTATIONS_PER_ITEM", 2),
		RenderWorkers:        envutil.Int("VEDICQA_RENDER_WORKERS", 4),
		GenServiceRPS:        envutil.Float("VEDICQA_GEN_SERVICE_RPS", 1),
		GenServiceBurst:      envutil.Int("VEDICQA_GEN_SERVICE_BURST", 1),
		ArchiveDB:            envutil.String("VEDICQA_ARCHIVE_DB", ""),
	}
}

// ApplyFile overlays values from a YAML config file. Keys absent from
// the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.MinQuestionLength < 0 || c.MinAnswerLength < 0 || c.MinAnswerWords < 0 {
		return fmt.Errorf("length thresholds must be non-negative")
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", c.SimilarityThreshold)
	}
	if c.PatternCeiling <= 0 || c.PatternCeiling > 1 {
		return fmt.Errorf("pattern_ceiling must be in (0,1], got %v", c.PatternCeiling)
	}
	if c.PatternFloor < 0 || c.PatternFloor >= c.PatternCeiling {
		return fmt.Errorf("pattern_floor must be in [0, ceiling), got %v", c.PatternFloor)
	}
	if c.RecencyWindow < 0 {
		return fmt.Errorf("recency_window must be non-negative")
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk_overlap must be smaller than chunk_size")
	}
	return nil
}
