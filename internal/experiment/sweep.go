package experiment

import (
	"context"
	"fmt"

	"github.com/alinchet/learning-dynamics/internal/model"
	"github.com/alinchet/learning-dynamics/internal/sim"
)

// Sweep parameter names accepted by RunSweep.
const (
	ParamBenefitCostRatio   = "b_over_c"
	ParamInGroupProb        = "alpha"
	ParamConflictRate       = "kappa"
	ParamMigrationRate      = "lambda"
	ParamSplitProb          = "q"
	ParamContestSteepness   = "z"
	ParamSelectionIntensity = "w"
)

// SweepParameters returns the accepted sweep parameter names.
func SweepParameters() []string {
	return []string{
		ParamBenefitCostRatio,
		ParamInGroupProb,
		ParamConflictRate,
		ParamMigrationRate,
		ParamSplitProb,
		ParamContestSteepness,
		ParamSelectionIntensity,
	}
}

// ApplyParameter returns a copy of base with the named parameter set to
// value. The benefit-cost ratio scales the benefit while leaving the
// cost untouched.
func ApplyParameter(base sim.Config, parameter string, value float64) (sim.Config, error) {
	cfg := base
	switch parameter {
	case ParamBenefitCostRatio:
		cfg.Benefit = value * base.Cost
	case ParamInGroupProb:
		cfg.InGroupProb = value
	case ParamConflictRate:
		cfg.ConflictRate = value
	case ParamMigrationRate:
		cfg.MigrationRate = value
	case ParamSplitProb:
		cfg.SplitProb = value
	case ParamContestSteepness:
		cfg.ContestSteepness = value
	case ParamSelectionIntensity:
		cfg.SelectionIntensity = value
	default:
		return sim.Config{}, fmt.Errorf("unknown sweep parameter %q", parameter)
	}
	return cfg, nil
}

// RunSweep runs one batch per value of the named parameter and returns
// a point per value, in input order. Each point's batch reuses the
// same master seed so points differ only by the swept parameter.
func RunSweep(ctx context.Context, base sim.Config, parameter string, values []float64, runs, workers int, seed int64) ([]model.SweepPoint, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sweep needs at least one value")
	}

	points := make([]model.SweepPoint, 0, len(values))
	for _, value := range values {
		cfg, err := ApplyParameter(base, parameter, value)
		if err != nil {
			return nil, err
		}
		batch, err := RunBatch(ctx, cfg, runs, workers, seed)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", parameter, value, err)
		}
		points = append(points, toSweepPoint(value, batch))
	}
	return points, nil
}

func toSweepPoint(value float64, batch BatchResult) model.SweepPoint {
	outcomes := make(map[string]int, len(batch.Outcomes))
	for strategy, count := range batch.Outcomes {
		outcomes[strategy.String()] = count
	}
	return model.SweepPoint{
		Value:           value,
		Runs:            batch.Runs,
		Fixation:        batch.Fixation,
		Outcomes:        outcomes,
		MeanGenerations: batch.MeanGenerations,
		CapHits:         batch.CapHits,
	}
}
