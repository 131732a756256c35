package sim

import (
	"fmt"
	"log/slog"

	"github.com/alinchet/learning-dynamics/internal/game"
)

// Config holds every parameter of one replicate. It is passed by value
// into NewPopulation and never mutated afterwards, so a single Config
// can seed any number of independent replicates.
type Config struct {
	// Groups is the number of groups, held constant for the whole run.
	Groups int
	// GroupSize is the target per-group size; groups may transiently
	// exceed it between the reproduction and splitting phases.
	GroupSize int
	// SelectionIntensity is the weight w in fitness = 1 - w + w*payoff.
	// Values outside [0, 1] are unusual but deliberately not rejected.
	SelectionIntensity float64
	// InGroupProb is the probability an encounter stays within the
	// actor's own group.
	InGroupProb float64
	// ConflictRate is the per-group probability of being drawn into a
	// between-group contest each generation.
	ConflictRate float64
	// MigrationRate is the probability a newborn is placed into a
	// uniformly chosen group other than its parent's.
	MigrationRate float64
	// SplitProb decides, for an oversized group, between splitting in
	// two and culling a single member.
	SplitProb float64
	// ContestSteepness is the exponent parameter z of the contest
	// success function.
	ContestSteepness float64
	// Benefit and Cost feed the payoff matrices.
	Benefit float64
	Cost    float64
	// Mutant is the strategy seeded into the single founder mutant.
	Mutant game.Strategy
	// MaxSteps caps the generation loop; on reaching it the replicate
	// returns the plurality strategy instead of a fixated one.
	MaxSteps int
	// Seed drives the replicate's private random source.
	Seed int64
	// RecordTrajectory enables per-generation diagnostics collection.
	RecordTrajectory bool
	// Logger receives notable-but-recoverable conditions at debug
	// level. Nil disables logging.
	Logger *slog.Logger
}

// Validate rejects parameter sets the model gives no meaning to.
func (c Config) Validate() error {
	if c.Groups <= 0 {
		return fmt.Errorf("groups must be > 0, got %d", c.Groups)
	}
	if c.GroupSize <= 0 {
		return fmt.Errorf("group size must be > 0, got %d", c.GroupSize)
	}
	if c.InGroupProb < 0 || c.InGroupProb > 1 {
		return fmt.Errorf("in-group probability must be in [0, 1], got %v", c.InGroupProb)
	}
	if c.ConflictRate < 0 || c.ConflictRate > 1 {
		return fmt.Errorf("conflict rate must be in [0, 1], got %v", c.ConflictRate)
	}
	if c.MigrationRate < 0 || c.MigrationRate > 1 {
		return fmt.Errorf("migration rate must be in [0, 1], got %v", c.MigrationRate)
	}
	if c.SplitProb < 0 || c.SplitProb > 1 {
		return fmt.Errorf("split probability must be in [0, 1], got %v", c.SplitProb)
	}
	if c.ContestSteepness <= 0 {
		return fmt.Errorf("contest steepness must be > 0, got %v", c.ContestSteepness)
	}
	if !c.Mutant.Valid() {
		return fmt.Errorf("invalid mutant strategy: %d", int(c.Mutant))
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be > 0, got %d", c.MaxSteps)
	}
	return nil
}
