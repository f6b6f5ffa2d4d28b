package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// ListRecentCommits returns the messages of the most recent commits on the
// default branch, newest first, at most maxCommits of them.
func (c *client) ListRecentCommits(ctx context.Context, repo string, maxCommits int) ([]string, error) {
	opts := &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: maxCommits},
	}
	commits, resp, err := c.repositories.ListCommits(ctx, c.org, repo, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: commits for %s", ErrNotFound, repo)
		}
		return nil, err
	}

	messages := make([]string, 0, len(commits))
	for _, commit := range commits {
		messages = append(messages, commit.GetCommit().GetMessage())
	}
	return messages, nil
}
