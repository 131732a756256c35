package stats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/model"
)

const experimentsDir = "experiments"

// WriteExperimentArtifacts writes one experiment's results under
// baseDir/experiments/<id>/ as config.json, fixation.json and
// fixation.csv. Existing artifacts for the same id are overwritten.
func WriteExperimentArtifacts(baseDir string, record model.ExperimentRecord) error {
	if record.ID == "" {
		return fmt.Errorf("experiment id is required")
	}
	dir := experimentDir(baseDir, record.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "config.json"), record.Config); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "fixation.json"), record); err != nil {
		return err
	}
	return writeFixationCSV(filepath.Join(dir, "fixation.csv"), record)
}

// ReadExperimentArtifacts loads the fixation.json written for an id.
func ReadExperimentArtifacts(baseDir, id string) (model.ExperimentRecord, bool, error) {
	if id == "" {
		return model.ExperimentRecord{}, false, fmt.Errorf("experiment id is required")
	}
	data, err := os.ReadFile(filepath.Join(experimentDir(baseDir, id), "fixation.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return model.ExperimentRecord{}, false, nil
		}
		return model.ExperimentRecord{}, false, err
	}
	var record model.ExperimentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.ExperimentRecord{}, false, err
	}
	return record, true, nil
}

// ListExperimentArtifacts returns every readable experiment under
// baseDir, newest first.
func ListExperimentArtifacts(baseDir string) ([]model.ExperimentRecord, error) {
	root := filepath.Join(baseDir, experimentsDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.ExperimentRecord{}, nil
		}
		return nil, err
	}

	records := make([]model.ExperimentRecord, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		record, ok, err := ReadExperimentArtifacts(baseDir, entry.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAtUTC == records[j].CreatedAtUTC {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAtUTC > records[j].CreatedAtUTC
	})
	return records, nil
}

func experimentDir(baseDir, id string) string {
	return filepath.Join(baseDir, experimentsDir, id)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// writeFixationCSV flattens sweep points into one row per value, with
// a column per strategy outcome.
func writeFixationCSV(path string, record model.ExperimentRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"parameter", "value", "runs", "fixation", "mean_generations", "cap_hits"}
	for _, strategy := range game.Strategies() {
		header = append(header, strategy.String())
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, point := range record.Points {
		row := []string{
			record.Parameter,
			formatFloat(point.Value),
			strconv.Itoa(point.Runs),
			formatFloat(point.Fixation),
			formatFloat(point.MeanGenerations),
			strconv.Itoa(point.CapHits),
		}
		for _, strategy := range game.Strategies() {
			row = append(row, strconv.Itoa(point.Outcomes[strategy.String()]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
