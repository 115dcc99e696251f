package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/vedicqa/internal/app"
	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/platform/logger"
)

func TestRunTemplateOnly(t *testing.T) {
	cfg := app.LoadConfig()
	cfg.MaxPerStrategy = 20
	out := filepath.Join(t.TempDir(), "train.jsonl")

	o := New(cfg, nil, logger.Nop())
	stats, err := o.Run(context.Background(), Options{OutputPath: out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Generated == 0 {
		t.Fatalf("no combinations generated")
	}
	if stats.Final == 0 {
		t.Fatalf("empty final dataset")
	}
	if stats.Final > stats.Generated {
		t.Fatalf("final %d exceeds generated %d", stats.Final, stats.Generated)
	}

	records, skipped, err := dataset.ReadJSONLFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("output contains %d malformed lines", skipped)
	}
	if len(records) != stats.Final {
		t.Fatalf("output has %d records, stats say %d", len(records), stats.Final)
	}
	for _, r := range records {
		if r.ID == "" || r.Question == "" || r.Answer == "" {
			t.Fatalf("incomplete record in output: %+v", r)
		}
	}
}

func TestRunAugmentGrowsDataset(t *testing.T) {
	cfg := app.LoadConfig()
	cfg.MaxPerStrategy = 10
	out := filepath.Join(t.TempDir(), "train.jsonl")

	o := New(cfg, nil, logger.Nop())
	stats, err := o.Run(context.Background(), Options{OutputPath: out, Augment: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Augmented <= 0 {
		t.Fatalf("expected augmentation to add records, got %d", stats.Augmented)
	}
	records, _, err := dataset.ReadJSONLFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	augmented := 0
	for _, r := range records {
		if r.GenerationMethod == dataset.MethodAugmented {
			augmented++
		}
	}
	if augmented != stats.Augmented {
		t.Fatalf("output has %d augmented records, stats say %d", augmented, stats.Augmented)
	}
}

func TestRunEnhanceKeepsCounts(t *testing.T) {
	cfg := app.LoadConfig()
	cfg.MaxPerStrategy = 10
	out := filepath.Join(t.TempDir(), "train.jsonl")

	o := New(cfg, nil, logger.Nop())
	stats, err := o.Run(context.Background(), Options{OutputPath: out, Enhance: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Enhanced < 0 || stats.Enhanced > stats.Final {
		t.Fatalf("enhanced count out of range: %d of %d", stats.Enhanced, stats.Final)
	}
	records, _, err := dataset.ReadJSONLFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	// Enhancement rewrites answers in place and never adds or drops
	// records.
	if len(records) != stats.Final {
		t.Fatalf("output has %d records, stats say %d", len(records), stats.Final)
	}
}

func TestRunWritesRemovedAudit(t *testing.T) {
	cfg := app.LoadConfig()
	cfg.MaxPerStrategy = 50
	out := filepath.Join(t.TempDir(), "train.jsonl")

	o := New(cfg, nil, logger.Nop())
	stats, err := o.Run(context.Background(), Options{OutputPath: out, WriteRemoved: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Removed+stats.BalancedAway == 0 {
		t.Skip("nothing removed, audit file not expected")
	}
	if stats.Removed > 0 {
		if _, err := os.Stat(dataset.RemovedPath(out)); err != nil {
			t.Fatalf("removed audit file missing: %v", err)
		}
	}
}

func TestRunCancelledContext(t *testing.T) {
	cfg := app.LoadConfig()
	out := filepath.Join(t.TempDir(), "train.jsonl")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := New(cfg, nil, logger.Nop())
	if _, err := o.Run(ctx, Options{OutputPath: out}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
