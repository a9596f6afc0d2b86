package mock

import (
	"context"

	"github.com/fwojciec/docs2prompt"
)

// Compile-time interface verification.
var (
	_ docs2prompt.Crawler      = (*Crawler)(nil)
	_ docs2prompt.OutputWriter = (*OutputWriter)(nil)
	_ docs2prompt.TokenCounter = (*TokenCounter)(nil)

	_ docs2prompt.CollectionWriter = (*CollectionWriter)(nil)
)

// Crawler is a mock implementation of docs2prompt.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, baseURL string, seen *docs2prompt.VisitedSet) (*docs2prompt.Collection, error)
}

func (c *Crawler) Crawl(ctx context.Context, baseURL string, seen *docs2prompt.VisitedSet) (*docs2prompt.Collection, error) {
	return c.CrawlFn(ctx, baseURL, seen)
}

// OutputWriter is a mock implementation of docs2prompt.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(ctx context.Context, path, content string) error
}

func (w *OutputWriter) WriteOutput(ctx context.Context, path, content string) error {
	return w.WriteOutputFn(ctx, path, content)
}

// TokenCounter is a mock implementation of docs2prompt.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

// CollectionWriter is a mock implementation of docs2prompt.CollectionWriter.
type CollectionWriter struct {
	WriteCollectionFn func(ctx context.Context, dir string, c *docs2prompt.Collection) error
}

func (w *CollectionWriter) WriteCollection(ctx context.Context, dir string, c *docs2prompt.Collection) error {
	return w.WriteCollectionFn(ctx, dir, c)
}
