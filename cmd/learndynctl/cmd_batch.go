package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alinchet/learning-dynamics/internal/game"
	"github.com/alinchet/learning-dynamics/internal/model"
	"github.com/alinchet/learning-dynamics/pkg/learndyn"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a batch of replicates and estimate fixation probability",
		Long: `Run many independent replicates of the configured parameter set
and report how often the mutant strategy fixated.

Example:
  learndynctl batch --runs 500 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, client, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			simCfg, err := cfg.SimConfig()
			if err != nil {
				return err
			}
			req := learndyn.BatchRequest{
				Config:  simCfg,
				Runs:    cfg.Run.Runs,
				Workers: cfg.Run.Workers,
				Seed:    cfg.Run.Seed,
			}
			if v, _ := cmd.Flags().GetInt("runs"); v > 0 {
				req.Runs = v
			}
			if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
				req.Workers = v
			}
			if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
				req.Seed = v
			}

			log.Info("running batch",
				"mutant", simCfg.Mutant.String(),
				"runs", req.Runs,
				"workers", req.Workers,
				"seed", req.Seed)

			record, err := client.RunBatch(cmd.Context(), req)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(record)
			}
			fmt.Printf("experiment: %s\n", record.ID)
			printPoint(record.Points[0])
			return nil
		},
	}

	cmd.Flags().Int("runs", 0, "Number of replicates")
	cmd.Flags().Int("workers", 0, "Replicate parallelism (0 = one per CPU)")
	cmd.Flags().Int64("seed", 0, "Master seed for replicate seeds")
	return cmd
}

func printPoint(point model.SweepPoint) {
	fmt.Printf("  runs: %d\n", point.Runs)
	fmt.Printf("  fixation: %.4f\n", point.Fixation)
	fmt.Printf("  mean generations: %.1f\n", point.MeanGenerations)
	fmt.Printf("  cap hits: %d\n", point.CapHits)
	for _, strategy := range game.Strategies() {
		fmt.Printf("  %s wins: %d\n", strategy, point.Outcomes[strategy.String()])
	}
}
