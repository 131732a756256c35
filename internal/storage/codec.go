package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alinchet/learning-dynamics/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// StampVersions fills the version header on a record about to be saved.
func StampVersions(record *model.ExperimentRecord) {
	record.SchemaVersion = CurrentSchemaVersion
	record.CodecVersion = CurrentCodecVersion
}

func EncodeExperiment(record model.ExperimentRecord) ([]byte, error) {
	return json.Marshal(record)
}

func DecodeExperiment(data []byte) (model.ExperimentRecord, error) {
	var record model.ExperimentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.ExperimentRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.ExperimentRecord{}, err
	}
	return record, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
