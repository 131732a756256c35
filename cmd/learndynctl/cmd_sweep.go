package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alinchet/learning-dynamics/internal/experiment"
	"github.com/alinchet/learning-dynamics/pkg/learndyn"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep one parameter and estimate fixation per value",
		Long: fmt.Sprintf(`Run one batch per value of a named parameter and report fixation
probability at each point. Accepted parameters: %s.

Example:
  learndynctl sweep --param kappa --values 0,0.025,0.05,0.1 --runs 200`,
			strings.Join(experiment.SweepParameters(), ", ")),
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
			req := learndyn.SweepRequest{
				Config:    simCfg,
				Parameter: cfg.Sweep.Parameter,
				Values:    cfg.Sweep.Values,
				Runs:      cfg.Run.Runs,
				Workers:   cfg.Run.Workers,
				Seed:      cfg.Run.Seed,
			}
			if v, _ := cmd.Flags().GetString("param"); v != "" {
				req.Parameter = v
			}
			if v, _ := cmd.Flags().GetFloat64Slice("values"); len(v) > 0 {
				req.Values = v
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
			if req.Parameter == "" {
				return fmt.Errorf("a sweep parameter is required (--param or the config sweep section)")
			}

			log.Info("running sweep",
				"parameter", req.Parameter,
				"values", len(req.Values),
				"runs", req.Runs,
				"seed", req.Seed)

			record, err := client.RunSweep(cmd.Context(), req)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(record)
			}
			fmt.Printf("experiment: %s (%s)\n", record.ID, record.Parameter)
			for _, point := range record.Points {
				fmt.Printf("%s = %g\n", record.Parameter, point.Value)
				printPoint(point)
			}
			return nil
		},
	}

	cmd.Flags().String("param", "", "Parameter to sweep")
	cmd.Flags().Float64Slice("values", nil, "Comma-separated parameter values")
	cmd.Flags().Int("runs", 0, "Replicates per value")
	cmd.Flags().Int("workers", 0, "Replicate parallelism (0 = one per CPU)")
	cmd.Flags().Int64("seed", 0, "Master seed reused at every value")
	return cmd
}
