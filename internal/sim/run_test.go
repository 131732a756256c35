package sim

import (
	"context"
	"testing"

	"github.com/alinchet/learning-dynamics/internal/game"
)

func TestRunHomogeneousAtStart(t *testing.T) {
	cfg := baseConfig()
	cfg.Mutant = game.Egoist // no actual mutant: uniform from generation 0
	p := newTestPopulation(t, cfg)

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Fixated || res.Generations != 0 {
		t.Fatalf("expected immediate fixation, got %+v", res)
	}
	if res.Winner != game.Egoist {
		t.Fatalf("winner %v, want egoist", res.Winner)
	}
}

func TestRunTerminatesWithinStepCap(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxSteps = 50
	cfg.Seed = 7
	p := newTestPopulation(t, cfg)

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Generations > cfg.MaxSteps {
		t.Fatalf("ran %d generations, cap is %d", res.Generations, cfg.MaxSteps)
	}
	if !res.Winner.Valid() {
		t.Fatalf("invalid winner %v", res.Winner)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	p := newTestPopulation(t, baseConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRunKeepsGroupCountInvariant(t *testing.T) {
	cfg := baseConfig()
	cfg.Groups = 6
	cfg.GroupSize = 3
	cfg.ConflictRate = 0.5
	cfg.SplitProb = 0.5
	cfg.MigrationRate = 0.3
	cfg.MaxSteps = 200
	cfg.RecordTrajectory = true
	cfg.Seed = 11
	p := newTestPopulation(t, cfg)

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if p.GroupCount() != cfg.Groups {
		t.Fatalf("group count %d, want %d", p.GroupCount(), cfg.Groups)
	}
	if len(res.Trajectory) != res.Generations {
		t.Fatalf("trajectory length %d, generations %d", len(res.Trajectory), res.Generations)
	}
	for _, stats := range res.Trajectory {
		if stats.PopulationSize <= 0 {
			t.Fatalf("generation %d recorded empty population", stats.Generation)
		}
		if stats.Altruists+stats.Parochialists+stats.Egoists != stats.PopulationSize {
			t.Fatalf("generation %d: strategy counts do not sum to population size", stats.Generation)
		}
	}
}

func TestConflictCarriesCooperatorsToFixation(t *testing.T) {
	// A solid altruist group against a defector group with certain
	// conflict: the altruists' positive payoff sum wins every contest
	// outright, so the defectors are overwritten in one generation.
	cfg := baseConfig()
	cfg.Groups = 2
	cfg.GroupSize = 4
	cfg.InGroupProb = 1
	cfg.ConflictRate = 1
	cfg.SplitProb = 0
	cfg.MigrationRate = 0
	cfg.Mutant = game.Egoist
	cfg.Seed = 3
	p := newTestPopulation(t, cfg)
	forceStrategy(t, &p.groups[0], game.Altruist)

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Fixated || res.Winner != game.Altruist {
		t.Fatalf("expected altruist fixation via conflict, got %+v", res)
	}
	if res.Generations != 1 {
		t.Fatalf("fixation should take one generation, took %d", res.Generations)
	}
}

func TestCostlyCooperationRarelyFixesWithoutConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	// In-group-only interaction with no conflict, migration or
	// splitting: altruists pay a strict cost and should fix far less
	// often than the neutral 1/(m*n) baseline. The bound below is a
	// loose multiple of neutral drift, so it holds with huge margin.
	fixations := 0
	const runs = 60
	for i := 0; i < runs; i++ {
		cfg := Config{
			Groups:             4,
			GroupSize:          4,
			SelectionIntensity: 0.1,
			InGroupProb:        1,
			ConflictRate:       0,
			MigrationRate:      0,
			SplitProb:          0,
			ContestSteepness:   0.5,
			Benefit:            2,
			Cost:               1,
			Mutant:             game.Altruist,
			MaxSteps:           20000,
			Seed:               int64(1000 + i),
		}
		p := newTestPopulation(t, cfg)
		res, err := p.Run(context.Background())
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if res.Fixated && res.Winner == game.Altruist {
			fixations++
		}
	}
	if fixations > 12 {
		t.Fatalf("altruists fixed %d/%d times under pure individual selection, expected rarely", fixations, runs)
	}
}

func TestGroupConflictRescuesCostlyCooperation(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	// Same setup as above with conflict switched on versus off. With
	// in-group-only interaction any group holding an altruist has a
	// strictly positive payoff sum while pure egoist groups sum to
	// zero, so altruist-bearing groups win their contests outright and
	// altruists should fixate clearly more often than the no-conflict
	// control.
	countFixations := func(conflictRate float64) int {
		fixations := 0
		const runs = 80
		for i := 0; i < runs; i++ {
			cfg := Config{
				Groups:             4,
				GroupSize:          4,
				SelectionIntensity: 0.1,
				InGroupProb:        1,
				ConflictRate:       conflictRate,
				MigrationRate:      0,
				SplitProb:          0,
				ContestSteepness:   0.5,
				Benefit:            2,
				Cost:               1,
				Mutant:             game.Altruist,
				MaxSteps:           20000,
				Seed:               int64(3000 + i),
			}
			p := newTestPopulation(t, cfg)
			res, err := p.Run(context.Background())
			if err != nil {
				t.Fatalf("run %d (kappa=%v): %v", i, conflictRate, err)
			}
			if res.Fixated && res.Winner == game.Altruist {
				fixations++
			}
		}
		return fixations
	}

	withoutConflict := countFixations(0)
	withConflict := countFixations(0.1)
	if withConflict <= withoutConflict {
		t.Fatalf("altruists fixed %d/80 times with conflict and %d/80 without, expected conflict to help",
			withConflict, withoutConflict)
	}
}
