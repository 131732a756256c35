package storage

import (
	"context"

	"github.com/alinchet/learning-dynamics/internal/model"
)

// Store persists completed experiment results. In-flight simulation
// state is never stored; a replicate either finishes or is discarded.
type Store interface {
	Init(ctx context.Context) error
	SaveExperiment(ctx context.Context, record model.ExperimentRecord) error
	GetExperiment(ctx context.Context, id string) (model.ExperimentRecord, bool, error)
	ListExperiments(ctx context.Context) ([]model.ExperimentRecord, error)
}
