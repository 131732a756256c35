package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/alinchet/learning-dynamics/internal/config"
)

func flaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().String("store", "", "")
	cmd.Flags().String("db", "", "")
	cmd.Flags().String("results-dir", "", "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestApplyFlagOverrides(t *testing.T) {
	cmd := flaggedCommand(t,
		"--log-level", "debug",
		"--store", "sqlite",
		"--db", "runs.db",
		"--results-dir", "out",
	)
	cfg := config.Default()
	applyFlagOverrides(cmd, cfg)

	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level %q, want debug", cfg.Logging.Level)
	}
	if cfg.Storage.Kind != "sqlite" || cfg.Storage.DBPath != "runs.db" {
		t.Fatalf("storage not overridden: %+v", cfg.Storage)
	}
	if cfg.Storage.ResultsDir != "out" {
		t.Fatalf("results dir %q, want out", cfg.Storage.ResultsDir)
	}
}

func TestApplyFlagOverridesKeepsConfigValues(t *testing.T) {
	cmd := flaggedCommand(t)
	cfg := config.Default()
	cfg.Storage.Kind = "sqlite"
	applyFlagOverrides(cmd, cfg)

	if cfg.Storage.Kind != "sqlite" {
		t.Fatalf("unset flags must not clobber config, got %q", cfg.Storage.Kind)
	}
}

func TestCommandsRegisterFlags(t *testing.T) {
	cases := []struct {
		cmd   *cobra.Command
		flags []string
	}{
		{newReplicateCmd(), []string{"mutant", "seed", "trajectory"}},
		{newBatchCmd(), []string{"runs", "workers", "seed"}},
		{newSweepCmd(), []string{"param", "values", "runs", "workers", "seed"}},
		{newExperimentsCmd(), []string{"id"}},
	}
	for _, tc := range cases {
		for _, name := range tc.flags {
			if tc.cmd.Flags().Lookup(name) == nil {
				t.Errorf("%s is missing flag --%s", tc.cmd.Use, name)
			}
		}
	}
}
