package service

import (
	"context"

	"github.com/evalhq/asset-verify/internal/github"
	"github.com/evalhq/asset-verify/models"
)

type FileService interface {
	Fetch(ctx context.Context, repo string, target models.TargetFile) (string, error)
}

type fileService struct {
	gh github.Client
}

func NewFileService(ghClient github.Client) FileService {
	return &fileService{gh: ghClient}
}

func (s *fileService) Fetch(ctx context.Context, repo string, target models.TargetFile) (string, error) {
	return s.gh.GetFileContent(ctx, repo, target.Path, target.Branch)
}
