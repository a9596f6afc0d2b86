package crawl

import (
	"context"

	"github.com/fwojciec/docs2prompt"
)

// Collector is the programmatic entry point: it resolves a source, runs
// discovery and optionally serializes the result.
type Collector struct {
	Repos   docs2prompt.RepositoryService
	Crawler docs2prompt.Crawler
	Links   docs2prompt.LinkExtractor

	// Searcher, when set, lets bare repository names be resolved.
	Searcher docs2prompt.RepositorySearcher
}

// RepoOptions controls repository collection.
type RepoOptions struct {
	// FullRepo walks every directory instead of only documentation folders.
	FullRepo bool

	// ExternalDocumentation crawls documentation sites linked from the
	// root README.
	ExternalDocumentation bool
}

// Resolve turns a repository identifier into a Repo.
func (c *Collector) Resolve(ctx context.Context, identifier string) (docs2prompt.Repo, error) {
	return docs2prompt.ResolveRepo(ctx, identifier, c.Searcher)
}

// CollectRepo collects the documentation of a resolved repository.
func (c *Collector) CollectRepo(ctx context.Context, repo docs2prompt.Repo, opts RepoOptions) (*docs2prompt.Collection, error) {
	walker := &Walker{Repos: c.Repos, FullRepo: opts.FullRepo}
	docs, err := walker.Walk(ctx, repo)
	if err != nil {
		return nil, err
	}

	if opts.ExternalDocumentation {
		esc := &Escalator{Links: c.Links, Crawler: c.Crawler}
		if err := esc.Escalate(ctx, repo.Name, docs, docs2prompt.NewVisitedSet()); err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// CollectRepository resolves identifier and collects its documentation.
func (c *Collector) CollectRepository(ctx context.Context, identifier string, opts RepoOptions) (*docs2prompt.Collection, error) {
	repo, err := c.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return c.CollectRepo(ctx, repo, opts)
}

// CollectSite crawls a documentation website.
func (c *Collector) CollectSite(ctx context.Context, baseURL string) (*docs2prompt.Collection, error) {
	return c.Crawler.Crawl(ctx, baseURL, nil)
}

// RepositoryDocumentation collects a repository's documentation and
// serializes it. Returns "" when nothing was found.
func (c *Collector) RepositoryDocumentation(ctx context.Context, identifier string, opts RepoOptions, format docs2prompt.Format) (string, error) {
	docs, err := c.CollectRepository(ctx, identifier, opts)
	if err != nil {
		return "", err
	}
	return docs2prompt.Serialize(docs, format), nil
}

// SiteDocumentation crawls a documentation website and serializes it.
// Returns "" when nothing was found.
func (c *Collector) SiteDocumentation(ctx context.Context, baseURL string, format docs2prompt.Format) (string, error) {
	docs, err := c.CollectSite(ctx, baseURL)
	if err != nil {
		return "", err
	}
	return docs2prompt.Serialize(docs, format), nil
}
