package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/sim"
)

// BatchResult aggregates the outcomes of independent replicates run
// from the same parameter set.
type BatchResult struct {
	Runs            int
	Outcomes        map[game.Strategy]int
	Fixation        float64
	MeanGenerations float64
	CapHits         int
}

// RunBatch runs the given number of independent replicates of base and
// tallies their terminal strategies. Fixation is the fraction of runs
// in which the population fixated on base.Mutant.
//
// Replicate seeds are drawn up front from seed, so results are
// reproducible regardless of worker count. Workers at or below zero
// means one worker per available CPU.
func RunBatch(ctx context.Context, base sim.Config, runs, workers int, seed int64) (BatchResult, error) {
	if runs <= 0 {
		return BatchResult{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	seeds := replicateSeeds(seed, runs)
	results := make([]sim.Result, runs)
	errs := make([]error, runs)

	p := pool.New().WithMaxGoroutines(workers)
	for i := 0; i < runs; i++ {
		i := i
		p.Go(func() {
			cfg := base
			cfg.Seed = seeds[i]
			cfg.RecordTrajectory = false

			population, err := sim.NewPopulation(cfg)
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = population.Run(ctx)
		})
	}
	p.Wait()

	if err := errors.Join(errs...); err != nil {
		return BatchResult{}, err
	}
	return tally(base.Mutant, results), nil
}

func tally(mutant game.Strategy, results []sim.Result) BatchResult {
	batch := BatchResult{
		Runs:     len(results),
		Outcomes: make(map[game.Strategy]int),
	}
	fixed := 0
	totalGenerations := 0
	for _, r := range results {
		batch.Outcomes[r.Winner]++
		totalGenerations += r.Generations
		if !r.Fixated {
			batch.CapHits++
		} else if r.Winner == mutant {
			fixed++
		}
	}
	batch.Fixation = float64(fixed) / float64(len(results))
	batch.MeanGenerations = float64(totalGenerations) / float64(len(results))
	return batch
}

// replicateSeeds expands one master seed into per-replicate seeds.
func replicateSeeds(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}
	return seeds
}
