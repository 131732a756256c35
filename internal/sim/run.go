package sim

import (
	"context"

	"github.com/alinchet/learning-dynamics/internal/game"
)

// Result is the outcome of one replicate.
type Result struct {
	// Winner is the fixated strategy, or the plurality strategy when
	// the step cap was reached first.
	Winner game.Strategy `json:"winner"`
	// Fixated reports whether the population actually became
	// homogeneous.
	Fixated bool `json:"fixated"`
	// Generations is the number of full generation updates performed.
	Generations int `json:"generations"`
	// FinalCounts is the strategy distribution at termination.
	FinalCounts map[game.Strategy]int `json:"final_counts"`
	// Trajectory holds per-generation diagnostics when
	// Config.RecordTrajectory is set.
	Trajectory []GenerationStats `json:"trajectory,omitempty"`
}

// GenerationStats captures the state after one full generation update.
type GenerationStats struct {
	Generation     int     `json:"generation"`
	PopulationSize int     `json:"population_size"`
	Altruists      int     `json:"altruists"`
	Parochialists  int     `json:"parochialists"`
	Egoists        int     `json:"egoists"`
	MeanPayoff     float64 `json:"mean_payoff"`
	Contests       int     `json:"contests"`
	Splits         int     `json:"splits"`
	Culls          int     `json:"culls"`
}

// Run drives the generation loop to fixation or the step cap. Each
// generation is: interaction, fitness, reproduction, conflict,
// splitting, fitness recompute, score reset, homogeneity check. The
// context is consulted between generations only; a replicate is
// abandoned whole, never resumed.
func (p *Population) Run(ctx context.Context) (Result, error) {
	if p.IsHomogeneous() {
		return p.result(0, true), nil
	}

	for gen := 1; gen <= p.cfg.MaxSteps; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if err := p.playGame(); err != nil {
			return Result{}, err
		}
		p.computeFitness()
		p.reproduce()
		contests := p.resolveConflicts()
		splits, culls := p.enforceGroupSizes()
		p.computeFitness()

		if p.cfg.RecordTrajectory {
			p.appendStats(gen, contests, splits, culls)
		}

		p.resetScores()

		if p.IsHomogeneous() {
			p.log.Debug("population fixated", "generation", gen,
				"strategy", p.Plurality().String())
			return p.result(gen, true), nil
		}
	}

	p.log.Debug("step cap reached, returning plurality strategy",
		"max_steps", p.cfg.MaxSteps)
	return p.result(p.cfg.MaxSteps, false), nil
}

func (p *Population) result(generations int, fixated bool) Result {
	res := Result{
		Winner:      p.Plurality(),
		Fixated:     fixated,
		Generations: generations,
		FinalCounts: p.Distribution(),
	}
	if p.cfg.RecordTrajectory {
		res.Trajectory = p.trajectory
	}
	return res
}

func (p *Population) appendStats(gen, contests, splits, culls int) {
	counts := p.Distribution()
	size := p.Size()
	meanPayoff := 0.0
	if size > 0 {
		total := 0.0
		for gi := range p.groups {
			total += p.groups[gi].PayoffSum()
		}
		meanPayoff = total / float64(size)
	}
	p.trajectory = append(p.trajectory, GenerationStats{
		Generation:     gen,
		PopulationSize: size,
		Altruists:      counts[game.Altruist],
		Parochialists:  counts[game.Parochialist],
		Egoists:        counts[game.Egoist],
		MeanPayoff:     meanPayoff,
		Contests:       contests,
		Splits:         splits,
		Culls:          culls,
	})
}
