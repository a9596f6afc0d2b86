// Package mock provides function-field implementations of the docs2prompt
// interfaces for tests.
package mock

import (
	"context"

	"github.com/fwojciec/docs2prompt"
)

// Compile-time interface verification.
var (
	_ docs2prompt.Fetcher        = (*Fetcher)(nil)
	_ docs2prompt.DomainLimiter  = (*DomainLimiter)(nil)
	_ docs2prompt.SitemapService = (*SitemapService)(nil)
)

// Fetcher is a mock implementation of docs2prompt.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of docs2prompt.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// SitemapService is a mock implementation of docs2prompt.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
