package docs2prompt

import "context"

// Crawler collects the pages of a documentation website.
type Crawler interface {
	// Crawl fetches baseURL's index page and the same-site pages it links
	// to, returning their text keyed by absolute URL.
	//
	// URLs already in seen are not fetched again; every URL the crawl
	// attempts is added to seen. A nil seen starts from an empty set.
	// A missing index page yields an empty collection, not an error.
	Crawl(ctx context.Context, baseURL string, seen *VisitedSet) (*Collection, error)
}

// OutputWriter persists serialized output.
type OutputWriter interface {
	// WriteOutput stores content at path, replacing any existing file.
	WriteOutput(ctx context.Context, path, content string) error
}

// CollectionWriter persists a collection as one file per document.
type CollectionWriter interface {
	// WriteCollection replaces dir with a tree holding every document of
	// c. The tree is built aside and swapped in only on success.
	WriteCollection(ctx context.Context, dir string, c *Collection) error
}
