package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alinchet/learning-dynamics/internal/config"
	"github.com/alinchet/learning-dynamics/internal/logging"
	"github.com/alinchet/learning-dynamics/pkg/learndyn"
)

// setup loads configuration and flag overrides and builds the shared
// logger and client. The returned cleanup closes both.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *learndyn.Client, func(), error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	applyFlagOverrides(cmd, cfg)

	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile == "" {
		logFile = cfg.Logging.File
	}
	log, closeLog, err := logging.Setup(cfg.Logging.Level, logFile)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	client, err := learndyn.New(learndyn.Options{
		StoreKind:        cfg.Storage.Kind,
		DBPath:           cfg.Storage.DBPath,
		ResultsDir:       cfg.Storage.ResultsDir,
		DisableArtifacts: cfg.Storage.ResultsDir == "",
		Logger:           log,
	})
	if err != nil {
		closeLog()
		return nil, nil, nil, nil, err
	}
	if err := client.Init(cmd.Context()); err != nil {
		client.Close()
		closeLog()
		return nil, nil, nil, nil, err
	}

	cleanup := func() {
		client.Close()
		closeLog()
	}
	return cfg, log, client, cleanup, nil
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Storage.Kind = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("results-dir"); v != "" {
		cfg.Storage.ResultsDir = v
	}
}
