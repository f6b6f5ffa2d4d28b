package ruleset

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/evalhq/asset-verify/models"
)

const (
	defaultBranch     = "main"
	defaultMaxCommits = 10
)

// FromJSON parses a verification config and applies defaults. Patterns are
// compile-checked here so the pipeline never hits a bad regex mid-run.
func FromJSON(data []byte) (*models.VerificationConfig, error) {
	var cfg models.VerificationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *models.VerificationConfig) {
	if cfg.TargetFile.Branch == "" {
		cfg.TargetFile.Branch = defaultBranch
	}
	if cfg.CommitVerification != nil && cfg.CommitVerification.MaxCommits <= 0 {
		cfg.CommitVerification.MaxCommits = defaultMaxCommits
	}
}

func validate(cfg *models.VerificationConfig) error {
	if cfg.TargetRepo == "" {
		return fmt.Errorf("target_repo is required")
	}
	if cfg.TargetFile.Path == "" {
		return fmt.Errorf("target_file.path is required")
	}

	for i, rule := range cfg.ContentRules {
		switch rule.Kind {
		case models.RuleStatMatch:
			if rule.Target == "" {
				return fmt.Errorf("content_rules[%d]: stat_match requires a target", i)
			}
		case models.RuleRegexMatch:
			if _, err := regexp.Compile(rule.Expected); err != nil {
				return fmt.Errorf("content_rules[%d]: invalid pattern %q: %w", i, rule.Expected, err)
			}
		case models.RuleTextMatch:
		default:
			return fmt.Errorf("content_rules[%d]: unknown rule type %q", i, rule.Kind)
		}
		if rule.Expected == "" {
			return fmt.Errorf("content_rules[%d]: expected value is required", i)
		}
	}

	if cv := cfg.CommitVerification; cv != nil {
		if cv.MessagePattern == "" {
			return fmt.Errorf("commit_verification.msg_pattern is required")
		}
		if _, err := regexp.Compile("(?i)" + cv.MessagePattern); err != nil {
			return fmt.Errorf("commit_verification: invalid pattern %q: %w", cv.MessagePattern, err)
		}
	}

	return nil
}
