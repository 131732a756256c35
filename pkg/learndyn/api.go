// Package learndyn is the embedding API for the learning-dynamics
// simulator. It wraps replicate execution, batch and sweep
// experiments, persistence and artifact output behind one client.
package learndyn

import (
	"context"
	"log/slog"
	"time"

	"github.com/alinchet/learning-dynamics/internal/experiment"
	"github.com/alinchet/learning-dynamics/internal/model"
	"github.com/alinchet/learning-dynamics/internal/sim"
	"github.com/alinchet/learning-dynamics/internal/stats"
	"github.com/alinchet/learning-dynamics/internal/storage"
)

const (
	defaultDBPath     = "learndyn.db"
	defaultResultsDir = "results"
	defaultRuns       = 100
)

// Options configures a Client. Zero values select working defaults.
type Options struct {
	// StoreKind is "memory" or "sqlite". Empty picks the best store
	// the binary was built with.
	StoreKind string

	// DBPath is the SQLite database path.
	DBPath string

	// ResultsDir is where JSON and CSV artifacts are written. Set
	// DisableArtifacts to skip artifact output entirely.
	ResultsDir string

	// DisableArtifacts turns off filesystem artifact output.
	DisableArtifacts bool

	// Logger receives operational logging. Nil disables it.
	Logger *slog.Logger
}

// Client runs experiments and records their results.
type Client struct {
	store      storage.Store
	resultsDir string
	log        *slog.Logger
}

// BatchRequest asks for independent replicates of one parameter set.
type BatchRequest struct {
	// Config is the replicate parameter set. Its Seed field is
	// ignored; per-replicate seeds derive from Seed below.
	Config sim.Config

	// Runs is the number of replicates. Zero means 100.
	Runs int

	// Workers bounds parallelism. Zero means one per available CPU.
	Workers int

	// Seed is the master seed. Zero draws one from the clock.
	Seed int64
}

// SweepRequest asks for one batch per value of a named parameter.
type SweepRequest struct {
	Config    sim.Config
	Parameter string
	Values    []float64
	Runs      int
	Workers   int
	Seed      int64
}

// New creates a Client. Call Init before running experiments and
// Close when done.
func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	resultsDir := opts.ResultsDir
	if resultsDir == "" {
		resultsDir = defaultResultsDir
	}
	if opts.DisableArtifacts {
		resultsDir = ""
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:      store,
		resultsDir: resultsDir,
		log:        opts.Logger,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// RunReplicate runs a single replicate to fixation or the step cap.
func (c *Client) RunReplicate(ctx context.Context, cfg sim.Config) (sim.Result, error) {
	if cfg.Logger == nil {
		cfg.Logger = c.log
	}
	population, err := sim.NewPopulation(cfg)
	if err != nil {
		return sim.Result{}, err
	}
	return population.Run(ctx)
}

// RunBatch runs a batch of replicates, stores the outcome and writes
// artifacts, and returns the stored record.
func (c *Client) RunBatch(ctx context.Context, req BatchRequest) (model.ExperimentRecord, error) {
	req = fillBatchDefaults(req, c.log)

	batch, err := experiment.RunBatch(ctx, req.Config, req.Runs, req.Workers, req.Seed)
	if err != nil {
		return model.ExperimentRecord{}, err
	}
	record := experiment.NewBatchRecord(req.Config, req.Seed, batch)
	if err := c.saveRecord(ctx, record); err != nil {
		return model.ExperimentRecord{}, err
	}
	return record, nil
}

// RunSweep runs one batch per swept value, stores the outcome and
// writes artifacts, and returns the stored record.
func (c *Client) RunSweep(ctx context.Context, req SweepRequest) (model.ExperimentRecord, error) {
	batchDefaults := fillBatchDefaults(BatchRequest{
		Config:  req.Config,
		Runs:    req.Runs,
		Workers: req.Workers,
		Seed:    req.Seed,
	}, c.log)

	points, err := experiment.RunSweep(ctx, batchDefaults.Config, req.Parameter, req.Values,
		batchDefaults.Runs, batchDefaults.Workers, batchDefaults.Seed)
	if err != nil {
		return model.ExperimentRecord{}, err
	}
	record := experiment.NewSweepRecord(batchDefaults.Config, req.Parameter,
		batchDefaults.Seed, batchDefaults.Runs, points)
	if err := c.saveRecord(ctx, record); err != nil {
		return model.ExperimentRecord{}, err
	}
	return record, nil
}

// Experiments lists stored experiments, newest first.
func (c *Client) Experiments(ctx context.Context) ([]model.ExperimentRecord, error) {
	return c.store.ListExperiments(ctx)
}

// Experiment fetches one stored experiment by id.
func (c *Client) Experiment(ctx context.Context, id string) (model.ExperimentRecord, bool, error) {
	return c.store.GetExperiment(ctx, id)
}

func (c *Client) saveRecord(ctx context.Context, record model.ExperimentRecord) error {
	if err := c.store.SaveExperiment(ctx, record); err != nil {
		return err
	}
	if c.resultsDir == "" {
		return nil
	}
	return stats.WriteExperimentArtifacts(c.resultsDir, record)
}

func fillBatchDefaults(req BatchRequest, log *slog.Logger) BatchRequest {
	if req.Runs <= 0 {
		req.Runs = defaultRuns
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	if req.Config.Logger == nil {
		req.Config.Logger = log
	}
	return req
}
