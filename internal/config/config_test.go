package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Success(t *testing.T) {
	t.Setenv("MCP_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("GITHUB_EVAL_ORG", "eval-org")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test123", cfg.GithubToken)
	assert.Equal(t, "eval-org", cfg.Org)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("MCP_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_EVAL_ORG", "eval-org")
	os.Unsetenv("MCP_GITHUB_TOKEN")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyOrg(t *testing.T) {
	t.Setenv("MCP_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("GITHUB_EVAL_ORG", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Setenv("MCP_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_EVAL_ORG", "")
	os.Unsetenv("MCP_GITHUB_TOKEN")
	os.Unsetenv("GITHUB_EVAL_ORG")

	dir := t.TempDir()
	content := "MCP_GITHUB_TOKEN=from-dotenv\nGITHUB_EVAL_ORG=dotenv-org\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotenvFile), []byte(content), 0o600))
	t.Chdir(dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.GithubToken)
	assert.Equal(t, "dotenv-org", cfg.Org)
}
