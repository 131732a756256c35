package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ReplicateConfig is the persisted form of one replicate's parameters.
// The mutant strategy is stored by name so records stay readable
// without the enum's numeric values.
type ReplicateConfig struct {
	Groups             int     `json:"groups"`
	GroupSize          int     `json:"group_size"`
	SelectionIntensity float64 `json:"selection_intensity"`
	InGroupProb        float64 `json:"in_group_prob"`
	ConflictRate       float64 `json:"conflict_rate"`
	MigrationRate      float64 `json:"migration_rate"`
	SplitProb          float64 `json:"split_prob"`
	ContestSteepness   float64 `json:"contest_steepness"`
	Benefit            float64 `json:"benefit"`
	Cost               float64 `json:"cost"`
	Mutant             string  `json:"mutant"`
	MaxSteps           int     `json:"max_steps"`
}

// SweepPoint is one swept parameter value with its batch outcome.
type SweepPoint struct {
	Value           float64        `json:"value"`
	Runs            int            `json:"runs"`
	Fixation        float64        `json:"fixation"`
	Outcomes        map[string]int `json:"outcomes"`
	MeanGenerations float64        `json:"mean_generations"`
	CapHits         int            `json:"cap_hits"`
}

// ExperimentRecord is a completed batch or sweep with its results. A
// plain batch is stored as a single-point record with Parameter empty.
type ExperimentRecord struct {
	VersionedRecord
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	CreatedAtUTC string          `json:"created_at_utc"`
	Parameter    string          `json:"parameter,omitempty"`
	Runs         int             `json:"runs"`
	Seed         int64           `json:"seed"`
	Config       ReplicateConfig `json:"config"`
	Points       []SweepPoint    `json:"points"`
}
