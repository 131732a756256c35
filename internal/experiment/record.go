package experiment

import (
	"time"

	"github.com/google/uuid"

	"github.com/alinchet/learning-dynamics/internal/model"
	"github.com/alinchet/learning-dynamics/internal/sim"
	"github.com/alinchet/learning-dynamics/internal/storage"
)

// Record kinds stored for completed experiments.
const (
	KindBatch = "batch"
	KindSweep = "sweep"
)

// NewBatchRecord packs a finished batch into a storable record. A
// batch is stored as a single-point sweep with an empty parameter.
func NewBatchRecord(base sim.Config, seed int64, batch BatchResult) model.ExperimentRecord {
	record := model.ExperimentRecord{
		ID:           uuid.NewString(),
		Kind:         KindBatch,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Runs:         batch.Runs,
		Seed:         seed,
		Config:       ToModelConfig(base),
		Points:       []model.SweepPoint{toSweepPoint(0, batch)},
	}
	storage.StampVersions(&record)
	return record
}

// NewSweepRecord packs finished sweep points into a storable record.
func NewSweepRecord(base sim.Config, parameter string, seed int64, runs int, points []model.SweepPoint) model.ExperimentRecord {
	record := model.ExperimentRecord{
		ID:           uuid.NewString(),
		Kind:         KindSweep,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Parameter:    parameter,
		Runs:         runs,
		Seed:         seed,
		Config:       ToModelConfig(base),
		Points:       points,
	}
	storage.StampVersions(&record)
	return record
}
