package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alinchet/learning-dynamics/internal/game"
)

func newReplicateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replicate",
		Short: "Run a single replicate to fixation or the step cap",
		Long: `Run one simulation replicate: a resident population with a single
mutant, evolved until one strategy fixates or the step cap is hit.

Example:
  learndynctl replicate --mutant parochialist --seed 42 --trajectory`,
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
			if v, _ := cmd.Flags().GetString("mutant"); v != "" {
				mutant, err := game.ParseStrategy(v)
				if err != nil {
					return err
				}
				simCfg.Mutant = mutant
			}
			if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
				simCfg.Seed = v
			}
			trajectory, _ := cmd.Flags().GetBool("trajectory")
			simCfg.RecordTrajectory = trajectory

			log.Info("running replicate",
				"mutant", simCfg.Mutant.String(),
				"groups", simCfg.Groups,
				"group_size", simCfg.GroupSize,
				"seed", simCfg.Seed)

			result, err := client.RunReplicate(cmd.Context(), simCfg)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(result)
			}
			fmt.Printf("winner: %s\n", result.Winner)
			fmt.Printf("fixated: %t\n", result.Fixated)
			fmt.Printf("generations: %d\n", result.Generations)
			for _, strategy := range game.Strategies() {
				fmt.Printf("  %s: %d\n", strategy, result.FinalCounts[strategy])
			}
			return nil
		},
	}

	cmd.Flags().String("mutant", "", "Mutant strategy: altruist, parochialist or egoist")
	cmd.Flags().Int64("seed", 0, "Replicate seed")
	cmd.Flags().Bool("trajectory", false, "Include per-generation diagnostics in JSON output")
	return cmd
}
