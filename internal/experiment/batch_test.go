package experiment

import (
	"context"
	"reflect"
	"testing"

	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/sim"
)

func smallConfig() sim.Config {
	return sim.Config{
		Groups:             3,
		GroupSize:          3,
		SelectionIntensity: 0.1,
		InGroupProb:        0.8,
		ConflictRate:       0.025,
		MigrationRate:      0.01,
		SplitProb:          0.01,
		ContestSteepness:   0.5,
		Benefit:            2,
		Cost:               1,
		Mutant:             game.Altruist,
		MaxSteps:           2000,
	}
}

func TestRunBatchTalliesAllRuns(t *testing.T) {
	batch, err := RunBatch(context.Background(), smallConfig(), 30, 4, 11)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if batch.Runs != 30 {
		t.Fatalf("got %d runs, want 30", batch.Runs)
	}
	total := 0
	for strategy, count := range batch.Outcomes {
		if !strategy.Valid() {
			t.Fatalf("invalid winning strategy %d", strategy)
		}
		total += count
	}
	if total != 30 {
		t.Fatalf("outcome counts sum to %d, want 30", total)
	}
	if batch.Fixation < 0 || batch.Fixation > 1 {
		t.Fatalf("fixation %v out of range", batch.Fixation)
	}
	if batch.MeanGenerations <= 0 {
		t.Fatalf("mean generations %v, want positive", batch.MeanGenerations)
	}
}

func TestRunBatchIsReproducible(t *testing.T) {
	first, err := RunBatch(context.Background(), smallConfig(), 20, 4, 99)
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}
	second, err := RunBatch(context.Background(), smallConfig(), 20, 1, 99)
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("batches differ across worker counts:\n%+v\n%+v", first, second)
	}
}

func TestRunBatchRejectsNonPositiveRuns(t *testing.T) {
	if _, err := RunBatch(context.Background(), smallConfig(), 0, 1, 1); err == nil {
		t.Fatal("expected error for zero runs")
	}
}

func TestRunBatchPropagatesInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.InGroupProb = 1.5
	if _, err := RunBatch(context.Background(), cfg, 5, 2, 1); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestRunBatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, smallConfig(), 5, 2, 1); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
