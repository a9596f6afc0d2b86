package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docs2prompt"
)

var (
	_ docs2prompt.RepositoryService  = (*LoggingRepositoryService)(nil)
	_ docs2prompt.RepositorySearcher = (*LoggingRepositorySearcher)(nil)
)

// LoggingRepositoryService wraps a RepositoryService with debug logging.
type LoggingRepositoryService struct {
	next   docs2prompt.RepositoryService
	logger *slog.Logger
}

// NewLoggingRepositoryService creates a new LoggingRepositoryService.
func NewLoggingRepositoryService(next docs2prompt.RepositoryService, logger *slog.Logger) *LoggingRepositoryService {
	return &LoggingRepositoryService{next: next, logger: logger}
}

// ListContents logs the directory listing and delegates.
func (s *LoggingRepositoryService) ListContents(ctx context.Context, owner, repo, path string) (entries []*docs2prompt.RepoEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list contents",
			"repo", owner+"/"+repo,
			"path", path,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListContents(ctx, owner, repo, path)
}

// FetchRaw logs the download and delegates.
func (s *LoggingRepositoryService) FetchRaw(ctx context.Context, downloadURL string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch raw",
			"url", downloadURL,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRaw(ctx, downloadURL)
}

// LoggingRepositorySearcher wraps a RepositorySearcher with debug logging.
type LoggingRepositorySearcher struct {
	next   docs2prompt.RepositorySearcher
	logger *slog.Logger
}

// NewLoggingRepositorySearcher creates a new LoggingRepositorySearcher.
func NewLoggingRepositorySearcher(next docs2prompt.RepositorySearcher, logger *slog.Logger) *LoggingRepositorySearcher {
	return &LoggingRepositorySearcher{next: next, logger: logger}
}

// SearchRepositories logs the search and delegates.
func (s *LoggingRepositorySearcher) SearchRepositories(ctx context.Context, query string) (repos []docs2prompt.Repo, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search repositories",
			"query", query,
			"count", len(repos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchRepositories(ctx, query)
}
