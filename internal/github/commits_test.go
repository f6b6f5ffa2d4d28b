package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	github "github.com/evalhq/asset-verify/internal/github/mocks"
	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListRecentCommits_Success(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	commits := []*gh.RepositoryCommit{
		{Commit: &gh.Commit{Message: gh.Ptr("Update: 更新分析报告 v2")}},
		{Commit: &gh.Commit{Message: gh.Ptr("Initial commit")}},
	}

	repoSvc.
		EXPECT().
		ListCommits(mock.Anything, "org-name", "repo-name",
			mock.MatchedBy(func(opts *gh.CommitsListOptions) bool {
				return opts.PerPage == 10
			}),
		).
		Once().
		Return(commits, &gh.Response{}, nil)

	c := &client{repositories: repoSvc, org: "org-name"}

	messages, err := c.ListRecentCommits(ctx, "repo-name", 10)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Update: 更新分析报告 v2", "Initial commit"}, messages)
}

func TestListRecentCommits_NotFound(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	resp := &gh.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}

	repoSvc.
		EXPECT().
		ListCommits(mock.Anything, "org-name", "repo-name", mock.Anything).
		Once().
		Return(nil, resp, errors.New("404 Not Found"))

	c := &client{repositories: repoSvc, org: "org-name"}

	messages, err := c.ListRecentCommits(ctx, "repo-name", 10)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, messages)
}

func TestListRecentCommits_TransportError(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		ListCommits(mock.Anything, "org-name", "repo-name", mock.Anything).
		Once().
		Return(nil, nil, errors.New("connection reset"))

	c := &client{repositories: repoSvc, org: "org-name"}

	messages, err := c.ListRecentCommits(ctx, "repo-name", 10)

	assert.Error(t, err)
	assert.Nil(t, messages)
}

func TestListRecentCommits_Empty(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		ListCommits(mock.Anything, "org-name", "repo-name", mock.Anything).
		Once().
		Return([]*gh.RepositoryCommit{}, &gh.Response{}, nil)

	c := &client{repositories: repoSvc, org: "org-name"}

	messages, err := c.ListRecentCommits(ctx, "repo-name", 10)

	assert.NoError(t, err)
	assert.Empty(t, messages)
}
