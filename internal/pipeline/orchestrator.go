// Package pipeline sequences the full training-data run: combination
// generation, candidate rendering, quality filtering, diversity
// analysis, one optional balancing pass, augmentation, and JSONL
// persistence. Individual candidate failures are counted and skipped,
// never fatal; only an empty final dataset fails the run.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/vedicqa/internal/aigen"
	"github.com/yungbote/vedicqa/internal/app"
	"github.com/yungbote/vedicqa/internal/augment"
	"github.com/yungbote/vedicqa/internal/curate"
	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/diversity"
	"github.com/yungbote/vedicqa/internal/extract"
	"github.com/yungbote/vedicqa/internal/generate"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/platform/logger"
	"github.com/yungbote/vedicqa/internal/repos"
	"github.com/yungbote/vedicqa/internal/types"
)

// ErrNoRecords is returned when a run produces nothing to write.
var ErrNoRecords = errors.New("no records survived the pipeline")

// Options selects what a single run does beyond template generation.
type Options struct {
	OutputPath string

	// WriteRemoved also writes the rejected records next to the output
	// for audit.
	WriteRemoved bool

	// Sources contribute extracted text chunks as extra candidates.
	Sources []extract.Source

	// GenClient, when set, asks an external service for PairsPerChunk
	// free-form pairs per chunk. Failures contribute zero pairs.
	GenClient     aigen.Client
	PairsPerChunk int

	// Enhance appends knowledge-graph context to short answers before
	// augmentation.
	Enhance bool

	// Augment multiplies the final kept set with domain variations.
	Augment bool
}

// RunStats aggregates counters across all stages of one run.
type RunStats struct {
	Generated    int            `json:"generated"`
	Unrenderable int            `json:"unrenderable"`
	ServicePairs int            `json:"service_pairs"`
	ChunkPairs   int            `json:"chunk_pairs"`
	Removed      int            `json:"removed"`
	RemovedBy    map[string]int `json:"removed_by_reason"`
	Duplicates   int            `json:"duplicates"`
	BalancedAway int            `json:"balanced_away"`
	Enhanced     int            `json:"enhanced"`
	Augmented    int            `json:"augmented"`
	Final        int            `json:"final"`

	Report diversity.Report `json:"diversity"`
}

type Orchestrator struct {
	cfg      *app.Config
	graph    *knowledge.Graph
	gen      *generate.Generator
	renderer *generate.Renderer
	filter   *curate.Filter
	analyzer *diversity.Analyzer
	runs     repos.PipelineRunRepo
	log      *logger.Logger
}

// New wires the engine from config. runs may be nil to disable the
// run archive.
func New(cfg *app.Config, runs repos.PipelineRunRepo, baseLog *logger.Logger) *Orchestrator {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	graph := knowledge.NewGraph()
	return &Orchestrator{
		cfg:      cfg,
		graph:    graph,
		gen:      generate.NewGenerator(graph),
		renderer: generate.NewRenderer(graph, cfg.MinAnswerLength),
		filter: curate.NewFilter(curate.Config{
			MinQuestionLength:   cfg.MinQuestionLength,
			MinAnswerLength:     cfg.MinAnswerLength,
			MinAnswerWords:      cfg.MinAnswerWords,
			RepetitionNGram:     cfg.RepetitionNGram,
			RepetitionMaxRatio:  cfg.RepetitionMaxRatio,
			SimilarityThreshold: cfg.SimilarityThreshold,
		}, curate.NewLevenshteinSimilarity(), baseLog),
		analyzer: diversity.NewAnalyzer(cfg.PatternCeiling, cfg.PatternFloor),
		runs:     runs,
		log:      baseLog.With("component", "pipeline"),
	}
}

// Run executes the full pipeline and writes the output file.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*RunStats, error) {
	stats := &RunStats{RemovedBy: make(map[string]int)}

	archiveID, archiveDone := o.archiveStart(ctx, opts)
	finish := func(err error) (*RunStats, error) {
		archiveDone(stats, err)
		return stats, err
	}

	// Template-driven candidates.
	combos := o.gen.All(o.cfg.MaxPerStrategy)
	stats.Generated = len(combos)
	o.log.Info("combinations generated", "count", len(combos))

	candidates, unrenderable, err := o.renderAll(ctx, combos)
	if err != nil {
		return finish(err)
	}
	stats.Unrenderable = unrenderable

	// Text-derived candidates.
	for _, src := range opts.Sources {
		if ctx.Err() != nil {
			return finish(ctx.Err())
		}
		chunks, err := src.Chunks()
		if err != nil {
			o.log.Error("source extraction failed, skipping", "error", err)
			continue
		}
		for _, chunk := range chunks {
			if rec := o.renderer.FromChunk(chunk); rec != nil {
				candidates = append(candidates, *rec)
				stats.ChunkPairs++
			}
			if opts.GenClient != nil {
				pairs := o.servicePairs(ctx, opts, chunk)
				for _, rec := range pairs {
					candidates = append(candidates, rec)
					stats.ServicePairs++
				}
			}
		}
	}

	// Quality filtering. Acceptance is strictly sequential so dedup
	// attribution stays deterministic.
	result := o.filter.FilterAll(candidates, o.cfg.RecencyWindow)
	stats.Removed = len(result.Removed)
	for reason, n := range result.Stats {
		switch reason {
		case "kept", "total", "removed":
		default:
			stats.RemovedBy[reason] = n
		}
	}
	stats.Duplicates = result.Stats[curate.ReasonDuplicate] + result.Stats[curate.ReasonNearDuplicate]

	kept := result.Kept

	// Diversity analysis and at most one balancing pass.
	stats.Report = o.analyzer.Analyze(kept)
	if len(stats.Report.OverRepresented) > 0 {
		rng := rand.New(rand.NewSource(o.cfg.BalanceSeed))
		balanced, dropped := diversity.Balance(kept, o.cfg.PatternCeiling, rng)
		stats.BalancedAway = len(dropped)
		kept = balanced
		o.log.Info("dataset balanced", "dropped", len(dropped), "remaining", len(kept))
	}

	// Answer enhancement, before augmentation so augmented copies
	// derive from the enriched answers.
	if opts.Enhance && len(kept) > 0 {
		enh := augment.NewEnhancer(o.graph)
		stats.Enhanced = enh.EnhanceDataset(kept, augment.DefaultMaxAddition)
		o.log.Info("answers enhanced", "count", stats.Enhanced)
	}

	// Augmentation.
	if opts.Augment && len(kept) > 0 {
		aug := augment.NewAugmenter(o.cfg.BalanceSeed, o.log)
		before := len(kept)
		kept = aug.AugmentDataset(kept, o.cfg.AugmentationsPerItem)
		stats.Augmented = len(kept) - before
	}

	stats.Final = len(kept)
	if len(kept) == 0 {
		return finish(ErrNoRecords)
	}

	// Persistence.
	if err := dataset.WriteJSONLFile(opts.OutputPath, kept); err != nil {
		return finish(fmt.Errorf("write output: %w", err))
	}
	if opts.WriteRemoved && len(result.Removed) > 0 {
		removedPath := dataset.RemovedPath(opts.OutputPath)
		if err := dataset.WriteJSONLFile(removedPath, result.Removed); err != nil {
			o.log.Error("write removed audit file failed", "path", removedPath, "error", err)
		}
	}

	o.log.Info("pipeline run complete",
		"generated", stats.Generated,
		"unrenderable", stats.Unrenderable,
		"removed", stats.Removed,
		"duplicates", stats.Duplicates,
		"balanced_away", stats.BalancedAway,
		"augmented", stats.Augmented,
		"final", stats.Final,
		"output", opts.OutputPath,
	)
	if archiveID != "" {
		o.log.Debug("run archived", "run_id", archiveID)
	}
	return finish(nil)
}

// renderAll fans rendering out across workers but collects results in
// combo order so downstream filtering sees a deterministic stream.
func (o *Orchestrator) renderAll(ctx context.Context, combos []generate.Combo) ([]dataset.Record, int, error) {
	workers := o.cfg.RenderWorkers
	if workers <= 0 {
		workers = 1
	}

	rendered := make([]*dataset.Record, len(combos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range combos {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			rec, err := o.renderer.Render(combos[i])
			if err != nil {
				// Unrenderable combos are counted by the nil slot.
				if !errors.Is(err, generate.ErrUnrenderable) {
					o.log.Debug("render failed, skipping", "strategy", combos[i].Strategy, "error", err)
				}
				return nil
			}
			rendered[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]dataset.Record, 0, len(combos))
	skipped := 0
	for _, rec := range rendered {
		if rec == nil {
			skipped++
			continue
		}
		out = append(out, *rec)
	}
	return out, skipped, nil
}

func (o *Orchestrator) servicePairs(ctx context.Context, opts Options, chunk extract.Chunk) []dataset.Record {
	n := opts.PairsPerChunk
	if n <= 0 {
		n = 3
	}
	pairs, err := opts.GenClient.GeneratePairs(ctx, chunk.Text, n)
	if err != nil {
		o.log.Warn("generation service failed, continuing",
			"document", chunk.Document,
			"section", chunk.SectionTitle,
			"error", err)
		return nil
	}
	out := make([]dataset.Record, 0, len(pairs))
	for _, p := range pairs {
		rec := o.renderer.FromServicePair(p.Question, p.Answer, p.QAType, p.Difficulty, chunk.Document, opts.GenClient.Model())
		if rec == nil {
			continue
		}
		rec.Source.Section = chunk.SectionTitle
		out = append(out, *rec)
	}
	return out
}

// archiveStart opens a PipelineRun row when archiving is configured.
// The returned closer writes final counters and status.
func (o *Orchestrator) archiveStart(ctx context.Context, opts Options) (string, func(*RunStats, error)) {
	if o.runs == nil {
		return "", func(*RunStats, error) {}
	}

	run, err := o.runs.Create(ctx, nil, &types.PipelineRun{
		Status:     "running",
		Stage:      "generate",
		OutputPath: opts.OutputPath,
	})
	if err != nil {
		o.log.Warn("run archive create failed, continuing without archive", "error", err)
		return "", func(*RunStats, error) {}
	}

	return run.ID.String(), func(stats *RunStats, runErr error) {
		reportJSON, _ := json.Marshal(stats.Report)
		updates := map[string]interface{}{
			"stage":         "done",
			"generated":     stats.Generated,
			"unrenderable":  stats.Unrenderable,
			"filtered":      stats.Removed,
			"duplicates":    stats.Duplicates,
			"balanced_away": stats.BalancedAway,
			"augmented":     stats.Augmented,
			"final_count":   stats.Final,
			"report_json":   string(reportJSON),
		}
		if opts.WriteRemoved {
			updates["removed_path"] = dataset.RemovedPath(opts.OutputPath)
		}
		if err := o.runs.UpdateFields(ctx, nil, run.ID, updates); err != nil {
			o.log.Warn("run archive update failed", "error", err)
		}
		status := "succeeded"
		if runErr != nil {
			status = "failed"
		}
		if err := o.runs.Finish(ctx, nil, run.ID, status, runErr); err != nil {
			o.log.Warn("run archive finish failed", "error", err)
		}
	}
}
