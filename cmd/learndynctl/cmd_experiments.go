package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExperimentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiments",
		Short: "List stored experiments, or show one with --id",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, client, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			jsonOut, _ := cmd.Flags().GetBool("json")

			if id, _ := cmd.Flags().GetString("id"); id != "" {
				record, ok, err := client.Experiment(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no experiment with id %s", id)
				}
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(record)
				}
				fmt.Printf("%s  %s  %s\n", record.ID, record.Kind, record.CreatedAtUTC)
				for _, point := range record.Points {
					fmt.Printf("%s = %g\n", record.Parameter, point.Value)
					printPoint(point)
				}
				return nil
			}

			records, err := client.Experiments(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(records)
			}
			if len(records) == 0 {
				fmt.Println("no experiments stored")
				return nil
			}
			for _, record := range records {
				parameter := record.Parameter
				if parameter == "" {
					parameter = "-"
				}
				fmt.Printf("%s  %-5s  %-10s  runs=%-4d  mutant=%s  %s\n",
					record.ID, record.Kind, parameter, record.Runs,
					record.Config.Mutant, record.CreatedAtUTC)
			}
			return nil
		},
	}

	cmd.Flags().String("id", "", "Show one experiment by id")
	return cmd
}
