package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yungbote/vedicqa/internal/aigen"
	"github.com/yungbote/vedicqa/internal/app"
	"github.com/yungbote/vedicqa/internal/augment"
	"github.com/yungbote/vedicqa/internal/curate"
	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/db"
	"github.com/yungbote/vedicqa/internal/diversity"
	"github.com/yungbote/vedicqa/internal/extract"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/pipeline"
	"github.com/yungbote/vedicqa/internal/platform/logger"
	"github.com/yungbote/vedicqa/internal/repos"
	"github.com/yungbote/vedicqa/internal/templates"
)

const usage = `usage: vedicqa <command> [flags]

commands:
  pipeline    run the full generation + curation pipeline
  extract     extract text chunks from a document
  filter      quality-filter an existing JSONL dataset
  augment     augment an existing JSONL dataset
  stats       report quality and diversity statistics for a dataset
  templates   list the question template library
`

func main() {
	// Logger
	logMode := os.Getenv("VEDICQA_LOG_MODE")
	if logMode == "" {
		logMode = "dev"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := app.LoadConfig()

	var cmdErr error
	switch os.Args[1] {
	case "pipeline":
		cmdErr = runPipeline(cfg, log, os.Args[2:])
	case "extract":
		cmdErr = runExtract(cfg, log, os.Args[2:])
	case "filter":
		cmdErr = runFilter(cfg, log, os.Args[2:])
	case "augment":
		cmdErr = runAugment(cfg, log, os.Args[2:])
	case "stats":
		cmdErr = runStats(cfg, log, os.Args[2:])
	case "templates":
		cmdErr = runTemplates(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if cmdErr != nil {
		log.Error("command failed", "command", os.Args[1], "error", cmdErr)
		os.Exit(1)
	}
}

func runPipeline(cfg *app.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("pipeline", flag.ExitOnError)
	out := fs.String("out", "dataset.jsonl", "output JSONL path")
	configPath := fs.String("config", "", "optional YAML config overlay")
	sources := fs.String("sources", "", "comma-separated text files to extract candidates from")
	doAugment := fs.Bool("augment", false, "augment the final dataset")
	doEnhance := fs.Bool("enhance", false, "append knowledge context to short answers")
	writeRemoved := fs.Bool("removed", true, "write rejected records next to the output")
	useService := fs.Bool("use-service", false, "ask the generation service for pairs per chunk")
	pairsPerChunk := fs.Int("pairs-per-chunk", 3, "service pairs requested per chunk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			return fmt.Errorf("apply config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Run archive (optional).
	var runRepo repos.PipelineRunRepo
	if cfg.ArchiveDB != "" {
		archive, err := db.NewSQLiteService(cfg.ArchiveDB, log)
		if err != nil {
			log.Warn("Run archive init failed, continuing without it", "error", err)
		} else {
			defer archive.Close()
			if err := archive.AutoMigrateAll(); err != nil {
				log.Warn("Run archive migration failed, continuing without it", "error", err)
			} else {
				runRepo = repos.NewPipelineRunRepo(archive.DB(), log)
			}
		}
	}

	opts := pipeline.Options{
		OutputPath:    *out,
		WriteRemoved:  *writeRemoved,
		Enhance:       *doEnhance,
		Augment:       *doAugment,
		PairsPerChunk: *pairsPerChunk,
	}
	for _, path := range splitList(*sources) {
		opts.Sources = append(opts.Sources, extract.NewTextFileSource(path, &extract.Chunker{
			ChunkSize: cfg.ChunkSize,
			Overlap:   cfg.ChunkOverlap,
			MinSize:   cfg.ChunkMin,
		}, log))
	}
	if *useService {
		client, err := aigen.NewHTTPClient(log)
		if err != nil {
			log.Warn("Generation service unavailable, continuing without it", "error", err)
		} else {
			opts.GenClient = aigen.NewRateLimited(client, cfg.GenServiceRPS, cfg.GenServiceBurst)
		}
	}

	orch := pipeline.New(cfg, runRepo, log)
	stats, err := orch.Run(context.Background(), opts)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func runExtract(cfg *app.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "input text file")
	out := fs.String("out", "", "output chunk JSON path (default: <in>.chunks.json)")
	chunkSize := fs.Int("chunk-size", cfg.ChunkSize, "target chunk size in characters")
	chunkOverlap := fs.Int("chunk-overlap", cfg.ChunkOverlap, "overlap between chunks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	if *out == "" {
		*out = *in + ".chunks.json"
	}

	src := extract.NewTextFileSource(*in, &extract.Chunker{
		ChunkSize: *chunkSize,
		Overlap:   *chunkOverlap,
		MinSize:   cfg.ChunkMin,
	}, log)
	chunks, err := src.Chunks()
	if err != nil {
		return fmt.Errorf("extract %s: %w", *in, err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chunks); err != nil {
		return fmt.Errorf("write chunks: %w", err)
	}
	log.Info("chunks written", "count", len(chunks), "path", *out)
	return nil
}

func runFilter(cfg *app.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	in := fs.String("in", "", "input JSONL path")
	out := fs.String("out", "", "output JSONL path")
	minQ := fs.Int("min-question", cfg.MinQuestionLength, "minimum question length")
	minA := fs.Int("min-answer", cfg.MinAnswerLength, "minimum answer length")
	minWords := fs.Int("min-answer-words", cfg.MinAnswerWords, "minimum answer word count")
	threshold := fs.Float64("similarity", cfg.SimilarityThreshold, "near-duplicate similarity threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	records, skipped, err := dataset.ReadJSONLFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}
	if skipped > 0 {
		log.Warn("malformed lines skipped", "count", skipped)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", *in)
	}

	filter := curate.NewFilter(curate.Config{
		MinQuestionLength:   *minQ,
		MinAnswerLength:     *minA,
		MinAnswerWords:      *minWords,
		RepetitionNGram:     cfg.RepetitionNGram,
		RepetitionMaxRatio:  cfg.RepetitionMaxRatio,
		SimilarityThreshold: *threshold,
	}, curate.NewLevenshteinSimilarity(), log)

	result := filter.FilterAll(records, cfg.RecencyWindow)
	if err := dataset.WriteJSONLFile(*out, result.Kept); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if len(result.Removed) > 0 {
		if err := dataset.WriteJSONLFile(dataset.RemovedPath(*out), result.Removed); err != nil {
			return fmt.Errorf("write removed file: %w", err)
		}
	}
	return printJSON(result.Stats)
}

func runAugment(cfg *app.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("augment", flag.ExitOnError)
	in := fs.String("in", "", "input JSONL path")
	out := fs.String("out", "", "output JSONL path")
	perItem := fs.Int("n", cfg.AugmentationsPerItem, "augmentations per item")
	seed := fs.Int64("seed", cfg.BalanceSeed, "random seed")
	doEnhance := fs.Bool("enhance", false, "append knowledge context to short answers first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	records, skipped, err := dataset.ReadJSONLFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}
	if skipped > 0 {
		log.Warn("malformed lines skipped", "count", skipped)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", *in)
	}

	enhanced := 0
	if *doEnhance {
		enh := augment.NewEnhancer(knowledge.NewGraph())
		enhanced = enh.EnhanceDataset(records, augment.DefaultMaxAddition)
	}

	aug := augment.NewAugmenter(*seed, log)
	augmented := aug.AugmentDataset(records, *perItem)
	if err := dataset.WriteJSONLFile(*out, augmented); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return printJSON(map[string]int{
		"original": len(records),
		"enhanced": enhanced,
		"total":    len(augmented),
		"added":    len(augmented) - len(records),
	})
}

func runStats(cfg *app.Config, log *logger.Logger, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", "", "input JSONL path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	records, skipped, err := dataset.ReadJSONLFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}
	if skipped > 0 {
		log.Warn("malformed lines skipped", "count", skipped)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", *in)
	}

	analyzer := diversity.NewAnalyzer(cfg.PatternCeiling, cfg.PatternFloor)
	report := analyzer.Analyze(records)

	methodCounts := map[string]int{}
	difficultyCounts := map[string]int{}
	for _, rec := range records {
		methodCounts[rec.GenerationMethod]++
		difficultyCounts[rec.Difficulty]++
	}

	return printJSON(map[string]any{
		"total":      len(records),
		"skipped":    skipped,
		"methods":    methodCounts,
		"difficulty": difficultyCounts,
		"diversity":  report,
	})
}

func runTemplates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sets := map[string][]templates.Template{
		"graha_basic":           templates.GrahaBasic,
		"graha_bhava_placement": templates.GrahaBhavaPlacement,
		"graha_rashi_placement": templates.GrahaRashiPlacement,
		"graha_dignity":         templates.GrahaDignity,
		"graha_dasha":           templates.GrahaDasha,
		"graha_aspects":         templates.GrahaAspects,
		"graha_conjunction":     templates.GrahaConjunction,
		"bhava_basic":           templates.BhavaBasic,
		"bhava_lordship":        templates.BhavaLordship,
		"bhava_prediction":      templates.BhavaPrediction,
		"rashi_basic":           templates.RashiBasic,
		"rashi_lagna":           templates.RashiLagna,
		"yoga_definition":       templates.YogaDefinition,
		"yoga_application":      templates.YogaApplication,
	}
	out := map[string][]string{}
	for name, set := range sets {
		for _, t := range set {
			out[name] = append(out[name], t.Pattern)
		}
	}
	return printJSON(out)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
