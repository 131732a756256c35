package sim

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/alinchet/learning-dynamics/internal/game"
)

// Population owns the groups and the five phase updates of one
// replicate. It is not safe for concurrent use; parallelism belongs to
// the batch layer, one Population per replicate.
type Population struct {
	cfg     Config
	payoffs game.Payoffs
	rng     *rand.Rand
	log     *slog.Logger
	groups  []Group

	trajectory []GenerationStats
}

// NewPopulation validates cfg and builds Groups x GroupSize egoists
// with a single mutant in the first slot of the first group.
func NewPopulation(cfg Config) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Population{
		cfg:     cfg,
		payoffs: game.NewPayoffs(cfg.Benefit, cfg.Cost),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		log:     logger,
		groups:  make([]Group, cfg.Groups),
	}

	for gi := range p.groups {
		members := make([]*Individual, 0, cfg.GroupSize)
		for i := 0; i < cfg.GroupSize; i++ {
			ind, err := NewIndividual(game.Egoist)
			if err != nil {
				return nil, err
			}
			members = append(members, ind)
		}
		p.groups[gi].Members = members
	}
	if err := p.groups[0].Members[0].SetStrategy(cfg.Mutant); err != nil {
		return nil, err
	}
	return p, nil
}

// GroupCount reports the (constant) number of groups.
func (p *Population) GroupCount() int {
	return len(p.groups)
}

// Size is the total individual count across all groups.
func (p *Population) Size() int {
	total := 0
	for gi := range p.groups {
		total += p.groups[gi].Size()
	}
	return total
}

// IsHomogeneous reports whether every individual carries one strategy.
func (p *Population) IsHomogeneous() bool {
	first, found := p.firstStrategy()
	if !found {
		return true
	}
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			if member.Strategy != first {
				return false
			}
		}
	}
	return true
}

// Distribution counts individuals per strategy.
func (p *Population) Distribution() map[game.Strategy]int {
	counts := make(map[game.Strategy]int, 3)
	for _, s := range game.Strategies() {
		counts[s] = 0
	}
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			counts[member.Strategy]++
		}
	}
	return counts
}

// Plurality returns the most frequent strategy; ties break toward the
// lower strategy value so the result is deterministic.
func (p *Population) Plurality() game.Strategy {
	counts := p.Distribution()
	best := game.Altruist
	for _, s := range game.Strategies() {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

func (p *Population) firstStrategy() (game.Strategy, bool) {
	for gi := range p.groups {
		if p.groups[gi].Size() > 0 {
			return p.groups[gi].Members[0].Strategy, true
		}
	}
	return 0, false
}

// computeFitness recomputes every individual's fitness from its
// accumulated payoff. Deterministic, O(population size).
func (p *Population) computeFitness() {
	w := p.cfg.SelectionIntensity
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			member.computeFitness(w)
		}
	}
}

// resetScores zeroes payoff and fitness ahead of the next generation.
func (p *Population) resetScores() {
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			member.Payoff = 0
			member.Fitness = 0
		}
	}
}
