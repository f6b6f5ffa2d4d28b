package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/evalhq/asset-verify/internal/github"
	"github.com/evalhq/asset-verify/models"
)

type CommitService interface {
	// MatchRecent reports whether any of the most recent commit messages
	// matches the configured pattern, case-insensitively.
	MatchRecent(ctx context.Context, repo string, rule models.CommitVerification) (bool, error)
}

type commitService struct {
	gh github.Client
}

func NewCommitService(ghClient github.Client) CommitService {
	return &commitService{gh: ghClient}
}

func (s *commitService) MatchRecent(ctx context.Context, repo string, rule models.CommitVerification) (bool, error) {
	re, err := regexp.Compile("(?i)" + rule.MessagePattern)
	if err != nil {
		return false, fmt.Errorf("compiling commit pattern %q: %w", rule.MessagePattern, err)
	}

	messages, err := s.gh.ListRecentCommits(ctx, repo, rule.MaxCommits)
	if err != nil {
		return false, err
	}

	for _, message := range messages {
		if re.MatchString(message) {
			return true, nil
		}
	}
	return false, nil
}
