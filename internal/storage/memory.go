package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/alinchet/learning-dynamics/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	experiments map[string]model.ExperimentRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.experiments = make(map[string]model.ExperimentRecord)
	return nil
}

func (s *MemoryStore) SaveExperiment(_ context.Context, record model.ExperimentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.experiments[record.ID] = copyExperiment(record)
	return nil
}

func (s *MemoryStore) GetExperiment(_ context.Context, id string) (model.ExperimentRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.experiments[id]
	if !ok {
		return model.ExperimentRecord{}, false, nil
	}
	return copyExperiment(record), true, nil
}

func (s *MemoryStore) ListExperiments(_ context.Context) ([]model.ExperimentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.ExperimentRecord, 0, len(s.experiments))
	for _, record := range s.experiments {
		records = append(records, copyExperiment(record))
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAtUTC == records[j].CreatedAtUTC {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAtUTC > records[j].CreatedAtUTC
	})
	return records, nil
}

func copyExperiment(record model.ExperimentRecord) model.ExperimentRecord {
	copied := record
	copied.Points = make([]model.SweepPoint, len(record.Points))
	for i, point := range record.Points {
		copied.Points[i] = point
		copied.Points[i].Outcomes = make(map[string]int, len(point.Outcomes))
		for k, v := range point.Outcomes {
			copied.Points[i].Outcomes[k] = v
		}
	}
	return copied
}
