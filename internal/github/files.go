package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// GetFileContent fetches and decodes a file from the contents endpoint.
// A 404 maps to ErrNotFound; an undecodable payload or a directory path maps
// to ErrDecode.
func (c *client) GetFileContent(ctx context.Context, repo, path, ref string) (string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	content, _, resp, err := c.repositories.GetContents(ctx, c.org, repo, path, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s@%s", ErrNotFound, path, ref)
		}
		return "", err
	}
	if content == nil {
		return "", fmt.Errorf("%w: %s is a directory", ErrDecode, path)
	}
	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return decoded, nil
}
