package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/analysis"
	"github.com/nexthire/next-hire/internal/config"
	"github.com/nexthire/next-hire/internal/jobs"
	"github.com/nexthire/next-hire/internal/llm"
	"github.com/nexthire/next-hire/internal/logging"
	"github.com/nexthire/next-hire/internal/scoring"
	"github.com/nexthire/next-hire/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume parsing, scoring, and job search endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger, err := logging.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.GoogleAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create generative client: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Missing artifacts are a warning, not a crash: the process serves every
	// endpoint except scoring, which reports not-ready per request. Artifacts
	// that are present but inconsistent are a configuration error and fatal.
	artifacts, err := scoring.LoadArtifacts(cfg.ArtifactsDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("invalid scoring model artifacts in %s: %w", cfg.ArtifactsDir, err)
		}
		logger.Warn("scoring model artifacts unavailable, analyze endpoint will report not ready",
			zap.String("dir", cfg.ArtifactsDir),
			zap.Error(err))
	} else {
		defer artifacts.Release()
		logger.Info("scoring model artifacts loaded", zap.String("dir", cfg.ArtifactsDir))
	}

	rewrite := analysis.NewRewritePipeline(client, nil, logger)
	deps := server.Dependencies{
		Extractor: analysis.NewExtractor(client, logger),
		Analyzer:  analysis.NewAnalyzer(client, rewrite, logger),
		Scorer:    scoring.NewScorer(artifacts),
		Intake:    jobs.NewIntake(),
	}

	if cfg.JobSearchEnabled() {
		provider := jobs.NewAdzunaClient(logger, cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry)
		deps.Searcher = jobs.NewSearcher(provider, logger)
	} else {
		logger.Warn("Adzuna credentials not set, job search endpoints disabled")
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, deps, logger)

	return srv.Start()
}
