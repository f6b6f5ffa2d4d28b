package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// RepositoriesAdapter is the slice of go-github's repositories service the
// verifier touches.
type RepositoriesAdapter interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *gh.CommitsListOptions) ([]*gh.RepositoryCommit, *gh.Response, error)
}

type Client interface {
	GetFileContent(ctx context.Context, repo, path, ref string) (string, error)
	ListRecentCommits(ctx context.Context, repo string, maxCommits int) ([]string, error)
}

type client struct {
	org          string
	repositories RepositoriesAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, org string) Client {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	if token != "" {
		httpClient.Transport = &authTransport{token: token}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		org:          org,
		repositories: ghClient.Repositories,
	}
}
