package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/evalhq/asset-verify/internal/config"
	"github.com/evalhq/asset-verify/internal/github"
	"github.com/evalhq/asset-verify/internal/orchestrator"
	"github.com/evalhq/asset-verify/internal/ruleset"
	"github.com/evalhq/asset-verify/internal/service"
	"github.com/evalhq/asset-verify/models"
)

//go:embed configs/*.json
var embeddedConfigs embed.FS

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	// Credentials are checked before the API client exists; a missing token
	// or org never reaches the network.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("environment not configured", zap.Error(err))
		return 1
	}

	data, err := embeddedConfigs.ReadFile("configs/verification.json")
	if err != nil {
		logger.Error("reading embedded verification config", zap.Error(err))
		return 1
	}

	verification, err := ruleset.FromJSON(data)
	if err != nil {
		logger.Error("invalid verification config", zap.Error(err))
		return 1
	}

	logger.Info("environment ready",
		zap.String("repo", cfg.Org+"/"+verification.TargetRepo),
	)

	ghClient := github.New(cfg.GithubToken, cfg.Org)
	pipeline := orchestrator.NewPipeline(
		service.NewFileService(ghClient),
		service.NewContentService(),
		service.NewCommitService(ghClient),
		logger,
	)

	report := pipeline.Run(context.Background(), verification)
	if !report.Passed {
		return 1
	}

	printSummary(os.Stdout, cfg.Org, verification, report)
	return 0
}

func printSummary(w io.Writer, org string, cfg *models.VerificationConfig, report *models.Report) {
	banner := strings.Repeat("=", 50)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "all verification stages passed")
	fmt.Fprintf(w, "target file:   %s\n", cfg.TargetFile.Path)
	fmt.Fprintf(w, "target repo:   %s/%s\n", org, cfg.TargetRepo)
	fmt.Fprintf(w, "branch:        %s\n", cfg.TargetFile.Branch)
	fmt.Fprintf(w, "stages passed: %d/%d\n", len(report.Stages), len(report.Stages))
	if cfg.CommitVerification != nil {
		fmt.Fprintf(w, "matched commit pattern: %s\n", cfg.CommitVerification.MessagePattern)
	}
	fmt.Fprintln(w, banner)
}
