package mock

import (
	"context"

	"github.com/fwojciec/docs2prompt"
)

// Compile-time interface verification.
var (
	_ docs2prompt.RepositoryService  = (*RepositoryService)(nil)
	_ docs2prompt.RepositorySearcher = (*RepositorySearcher)(nil)
)

// RepositoryService is a mock implementation of docs2prompt.RepositoryService.
type RepositoryService struct {
	ListContentsFn func(ctx context.Context, owner, repo, path string) ([]*docs2prompt.RepoEntry, error)
	FetchRawFn     func(ctx context.Context, downloadURL string) (string, error)
}

func (s *RepositoryService) ListContents(ctx context.Context, owner, repo, path string) ([]*docs2prompt.RepoEntry, error) {
	return s.ListContentsFn(ctx, owner, repo, path)
}

func (s *RepositoryService) FetchRaw(ctx context.Context, downloadURL string) (string, error) {
	return s.FetchRawFn(ctx, downloadURL)
}

// RepositorySearcher is a mock implementation of docs2prompt.RepositorySearcher.
type RepositorySearcher struct {
	SearchRepositoriesFn func(ctx context.Context, query string) ([]docs2prompt.Repo, error)
}

func (s *RepositorySearcher) SearchRepositories(ctx context.Context, query string) ([]docs2prompt.Repo, error) {
	return s.SearchRepositoriesFn(ctx, query)
}
