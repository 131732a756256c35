package sim

import (
	"testing"

	"github.com/alinchet/learning-dynamics/internal/game"
)

func TestReproduceGrowsPopulationByOne(t *testing.T) {
	p := newTestPopulation(t, baseConfig())
	before := p.Size()
	p.computeFitness()
	p.reproduce()
	if got := p.Size(); got != before+1 {
		t.Fatalf("population size %d, want %d", got, before+1)
	}
	if p.GroupCount() != baseConfig().Groups {
		t.Fatalf("group count changed to %d", p.GroupCount())
	}
}

func TestReproduceUniformFallbackOnZeroFitness(t *testing.T) {
	cfg := baseConfig()
	cfg.SelectionIntensity = 1 // fitness == payoff, all zero pre-game
	p := newTestPopulation(t, cfg)
	before := p.Size()

	p.computeFitness()
	p.reproduce()

	if got := p.Size(); got != before+1 {
		t.Fatalf("degenerate fitness must still produce a birth: size %d, want %d", got, before+1)
	}
}

func TestSelectParentFavorsHighFitness(t *testing.T) {
	cfg := baseConfig()
	cfg.Mutant = game.Parochialist
	p := newTestPopulation(t, cfg)

	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			member.Fitness = 0.001
		}
	}
	// The mutant towers over everyone else.
	p.groups[0].Members[0].Fitness = 100

	hits := 0
	for i := 0; i < 500; i++ {
		parent, gi := p.selectParent()
		if parent.Strategy == game.Parochialist {
			hits++
			if gi != 0 {
				t.Fatalf("parent group index %d, want 0", gi)
			}
		}
	}
	if hits < 450 {
		t.Fatalf("high-fitness individual selected %d/500 times, expected near-certain", hits)
	}
}

func TestSelectParentIgnoresNegativeFitness(t *testing.T) {
	cfg := baseConfig()
	cfg.Mutant = game.Altruist
	p := newTestPopulation(t, cfg)

	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			member.Fitness = -5
		}
	}
	p.groups[1].Members[2].Fitness = 0.5

	for i := 0; i < 100; i++ {
		parent, gi := p.selectParent()
		if parent != p.groups[1].Members[2] || gi != 1 {
			t.Fatalf("expected the only positive-fitness individual, got group %d", gi)
		}
	}
}

func TestReproduceMigration(t *testing.T) {
	for _, migrate := range []bool{true, false} {
		cfg := baseConfig()
		cfg.Groups = 2
		cfg.GroupSize = 3
		cfg.Mutant = game.Altruist
		if migrate {
			cfg.MigrationRate = 1
		} else {
			cfg.MigrationRate = 0
		}
		p := newTestPopulation(t, cfg)

		// Only the mutant in group 0 has positive fitness, so it is the
		// parent with certainty.
		for gi := range p.groups {
			for _, member := range p.groups[gi].Members {
				member.Fitness = 0
			}
		}
		p.groups[0].Members[0].Fitness = 1

		p.reproduce()

		wantGroup := 0
		if migrate {
			wantGroup = 1
		}
		if got := p.groups[wantGroup].Size(); got != cfg.GroupSize+1 {
			t.Fatalf("migrate=%v: group %d size %d, want %d", migrate, wantGroup, got, cfg.GroupSize+1)
		}

		newborn := p.groups[wantGroup].Members[p.groups[wantGroup].Size()-1]
		if newborn.Strategy != game.Altruist {
			t.Fatalf("newborn strategy %v, want parent's altruist", newborn.Strategy)
		}
		if newborn.Payoff != 0 || newborn.Fitness != 0 {
			t.Fatalf("newborn scores must be zero, got payoff=%v fitness=%v", newborn.Payoff, newborn.Fitness)
		}
		if newborn.ID == p.groups[0].Members[0].ID {
			t.Fatal("newborn must carry a fresh identity")
		}
	}
}
