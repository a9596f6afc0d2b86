package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/docs2prompt"
)

// Escalator follows documentation links found in a repository's root README
// and crawls the sites they point to.
type Escalator struct {
	Links   docs2prompt.LinkExtractor
	Crawler docs2prompt.Crawler
}

// Escalate inspects the root README of repo in docs and crawls every link
// whose URL or text mentions a documentation keyword. Crawled pages are
// merged into docs, replacing documents with the same key.
//
// seen is shared by all crawls so pages are fetched at most once; nil starts
// from an empty set. A missing README is not an error. Failed crawls are
// skipped.
func (e *Escalator) Escalate(ctx context.Context, repo string, docs *docs2prompt.Collection, seen *docs2prompt.VisitedSet) error {
	readme, ok := docs.Get(docs2prompt.ReadmeKey(repo))
	if !ok {
		return nil
	}
	if seen == nil {
		seen = docs2prompt.NewVisitedSet()
	}

	links, err := e.Links.ExtractLinks(readme)
	if err != nil {
		return fmt.Errorf("extract README links: %w", err)
	}

	crawled := make(map[string]bool)
	for _, link := range links {
		if !docs2prompt.IsDocLink(link) || crawled[link.URL] {
			continue
		}
		crawled[link.URL] = true

		found, err := e.Crawler.Crawl(ctx, link.URL, seen)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		docs.Merge(found)
	}

	return nil
}
