package experiment

import (
	"fmt"

	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/model"
	"github.com/alinchet/learning-dynamics/internal/sim"
)

// ToModelConfig converts runtime parameters to their persisted form.
func ToModelConfig(cfg sim.Config) model.ReplicateConfig {
	return model.ReplicateConfig{
		Groups:             cfg.Groups,
		GroupSize:          cfg.GroupSize,
		SelectionIntensity: cfg.SelectionIntensity,
		InGroupProb:        cfg.InGroupProb,
		ConflictRate:       cfg.ConflictRate,
		MigrationRate:      cfg.MigrationRate,
		SplitProb:          cfg.SplitProb,
		ContestSteepness:   cfg.ContestSteepness,
		Benefit:            cfg.Benefit,
		Cost:               cfg.Cost,
		Mutant:             cfg.Mutant.String(),
		MaxSteps:           cfg.MaxSteps,
	}
}

// FromModelConfig rebuilds runtime parameters from a stored record.
// Seed and logging are runtime concerns and are left zero.
func FromModelConfig(mc model.ReplicateConfig) (sim.Config, error) {
	mutant, err := game.ParseStrategy(mc.Mutant)
	if err != nil {
		return sim.Config{}, fmt.Errorf("stored config: %w", err)
	}
	return sim.Config{
		Groups:             mc.Groups,
		GroupSize:          mc.GroupSize,
		SelectionIntensity: mc.SelectionIntensity,
		InGroupProb:        mc.InGroupProb,
		ConflictRate:       mc.ConflictRate,
		MigrationRate:      mc.MigrationRate,
		SplitProb:          mc.SplitProb,
		ContestSteepness:   mc.ContestSteepness,
		Benefit:            mc.Benefit,
		Cost:               mc.Cost,
		Mutant:             mutant,
		MaxSteps:           mc.MaxSteps,
	}, nil
}
