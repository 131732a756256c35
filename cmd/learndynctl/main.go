package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "learndynctl",
		Short: "Multilevel selection simulator for parochial altruism",
		Long: `learndynctl runs stochastic simulations of a group-structured
population in which altruists, parochialists and egoists compete
through individual selection, migration and between-group conflict.

Replicates run to fixation or a step cap; batches and sweeps estimate
fixation probabilities over many replicates.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("store", "", "Experiment store: memory or sqlite")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path")
	rootCmd.PersistentFlags().String("results-dir", "", "Directory for JSON and CSV artifacts")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReplicateCmd(),
		newBatchCmd(),
		newSweepCmd(),
		newExperimentsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("learndynctl version %s\n", version)
			}
		},
	}
}
