package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alinchet/learning-dynamics/internal/game"
)

// Individual is a single strategy-carrying agent. The ID distinguishes
// clones from their parents even when every other field matches; it is
// never reused across individuals within a run.
type Individual struct {
	ID       string
	Strategy game.Strategy
	Payoff   float64
	Fitness  float64
}

// NewIndividual creates an individual with a fresh identity and zero
// payoff and fitness.
func NewIndividual(strategy game.Strategy) (*Individual, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("invalid strategy: %d", int(strategy))
	}
	return &Individual{ID: uuid.NewString(), Strategy: strategy}, nil
}

// SetStrategy overwrites the strategy, rejecting values outside the
// strategy space. Used only for the one-time mutant seeding.
func (ind *Individual) SetStrategy(strategy game.Strategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("invalid strategy: %d", int(strategy))
	}
	ind.Strategy = strategy
	return nil
}

// clone is the reproduction copy: same strategy, fresh identity,
// payoff and fitness reset to zero.
func (ind *Individual) clone() *Individual {
	return &Individual{ID: uuid.NewString(), Strategy: ind.Strategy}
}

// duplicate is the conflict-replacement copy: fresh identity but the
// current payoff and fitness carry over.
func (ind *Individual) duplicate() *Individual {
	return &Individual{
		ID:       uuid.NewString(),
		Strategy: ind.Strategy,
		Payoff:   ind.Payoff,
		Fitness:  ind.Fitness,
	}
}

func (ind *Individual) computeFitness(w float64) {
	ind.Fitness = 1 - w + w*ind.Payoff
}
