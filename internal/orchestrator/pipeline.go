package orchestrator

import (
	"context"

	"go.uber.org/zap"

	"github.com/evalhq/asset-verify/internal/service"
	"github.com/evalhq/asset-verify/models"
)

// Pipeline runs the verification stages in order: file existence, structure,
// content rules, commit record. The first failing stage terminates the run.
// Network and rule failures are recovered into the report; Run never panics
// or returns an error.
type Pipeline struct {
	files   service.FileService
	content service.ContentService
	commits service.CommitService
	logger  *zap.Logger
}

func NewPipeline(files service.FileService, content service.ContentService, commits service.CommitService, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		files:   files,
		content: content,
		commits: commits,
		logger:  logger,
	}
}

func (p *Pipeline) Run(ctx context.Context, cfg *models.VerificationConfig) *models.Report {
	report := &models.Report{}

	content, ok := p.verifyFileExists(ctx, cfg, report)
	if !ok {
		return report
	}
	if !p.verifyStructure(content, cfg, report) {
		return report
	}
	if !p.verifyContent(content, cfg, report) {
		return report
	}
	if !p.verifyCommits(ctx, cfg, report) {
		return report
	}

	report.Passed = true
	return report
}

func (p *Pipeline) verifyFileExists(ctx context.Context, cfg *models.VerificationConfig, report *models.Report) (string, bool) {
	p.logger.Info("verifying file existence",
		zap.String("repo", cfg.TargetRepo),
		zap.String("path", cfg.TargetFile.Path),
		zap.String("branch", cfg.TargetFile.Branch),
	)

	content, err := p.files.Fetch(ctx, cfg.TargetRepo, cfg.TargetFile)
	if err != nil {
		p.logger.Error("file not available",
			zap.String("path", cfg.TargetFile.Path),
			zap.String("branch", cfg.TargetFile.Branch),
			zap.Error(err),
		)
		report.Add(models.StageResult{Stage: models.StageFileExists, Detail: err.Error()})
		return "", false
	}

	p.logger.Info("file exists", zap.String("path", cfg.TargetFile.Path))
	report.Add(models.StageResult{Stage: models.StageFileExists, Passed: true})
	return content, true
}

func (p *Pipeline) verifyStructure(content string, cfg *models.VerificationConfig, report *models.Report) bool {
	p.logger.Info("verifying file structure", zap.Int("required", len(cfg.RequiredStructures)))

	// Unlike the content stage, every missing structure is reported at once.
	missing := p.content.MissingStructures(content, cfg.RequiredStructures)
	if len(missing) > 0 {
		p.logger.Error("required structures missing", zap.Strings("missing", missing))
		report.Add(models.StageResult{Stage: models.StageStructure, Missing: missing})
		return false
	}

	p.logger.Info("all required structures present")
	report.Add(models.StageResult{Stage: models.StageStructure, Passed: true})
	return true
}

func (p *Pipeline) verifyContent(content string, cfg *models.VerificationConfig, report *models.Report) bool {
	if len(cfg.ContentRules) == 0 {
		p.logger.Info("no content rules configured, skipping")
		report.Add(models.StageResult{Stage: models.StageContent, Passed: true, Skipped: true})
		return true
	}

	p.logger.Info("verifying content accuracy", zap.Int("rules", len(cfg.ContentRules)))

	// The first failing rule aborts the stage.
	if failure := p.content.CheckRules(content, cfg.ContentRules); failure != nil {
		p.logger.Error("content rule failed",
			zap.String("kind", string(failure.Rule.Kind)),
			zap.String("target", failure.Rule.Target),
			zap.String("expected", failure.Rule.Expected),
		)
		report.Add(models.StageResult{Stage: models.StageContent, Detail: failure.String()})
		return false
	}

	p.logger.Info("all content rules satisfied")
	report.Add(models.StageResult{Stage: models.StageContent, Passed: true})
	return true
}

func (p *Pipeline) verifyCommits(ctx context.Context, cfg *models.VerificationConfig, report *models.Report) bool {
	rule := cfg.CommitVerification
	if rule == nil {
		p.logger.Info("no commit verification configured, skipping")
		report.Add(models.StageResult{Stage: models.StageCommits, Passed: true, Skipped: true})
		return true
	}

	p.logger.Info("verifying commit record",
		zap.String("pattern", rule.MessagePattern),
		zap.Int("max_commits", rule.MaxCommits),
	)

	found, err := p.commits.MatchRecent(ctx, cfg.TargetRepo, *rule)
	if err != nil {
		p.logger.Error("commit search failed", zap.Error(err))
		report.Add(models.StageResult{Stage: models.StageCommits, Detail: err.Error()})
		return false
	}
	if !found {
		p.logger.Error("no matching commit found", zap.String("pattern", rule.MessagePattern))
		report.Add(models.StageResult{Stage: models.StageCommits, Detail: "no commit message matched " + rule.MessagePattern})
		return false
	}

	p.logger.Info("matching commit found", zap.String("pattern", rule.MessagePattern))
	report.Add(models.StageResult{Stage: models.StageCommits, Passed: true})
	return true
}
