package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/docs2prompt"
)

// IndexPage is the page a site crawl starts from, relative to the base URL.
const IndexPage = "index.html"

var _ docs2prompt.Crawler = (*SiteCrawler)(nil)

// SiteCrawler crawls a documentation site one level deep: the index page
// and every same-site page it links to.
type SiteCrawler struct {
	Fetcher   docs2prompt.Fetcher
	Links     docs2prompt.LinkSelector
	Extractor docs2prompt.Extractor
	Converter docs2prompt.Converter

	// Sitemaps, when set, contributes sitemap URLs under the base path.
	Sitemaps docs2prompt.SitemapService

	// RateLimiter, when set, throttles requests per host.
	RateLimiter docs2prompt.DomainLimiter
}

// Crawl implements docs2prompt.Crawler.
func (c *SiteCrawler) Crawl(ctx context.Context, baseURL string, seen *docs2prompt.VisitedSet) (*docs2prompt.Collection, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "invalid documentation URL %q", baseURL)
	}
	if seen == nil {
		seen = docs2prompt.NewVisitedSet()
	}

	pages, index, err := c.discover(ctx, base)
	if err != nil {
		return nil, err
	}

	docs := docs2prompt.NewCollection()
	for _, page := range pages {
		if seen.Has(page) {
			continue
		}
		seen.Add(page)

		if !docs.Record(c.fetchPage(ctx, page, index)) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	return docs, nil
}

// discover returns the pages to fetch: the index page followed by the
// relative links found on it, then any sitemap URLs. An unreachable index
// page contributes nothing. The index page body is returned so it is not
// downloaded twice.
func (c *SiteCrawler) discover(ctx context.Context, base *url.URL) ([]string, *prefetched, error) {
	var pages []string
	added := make(map[string]bool)
	add := func(u string) {
		if !added[u] {
			added[u] = true
			pages = append(pages, u)
		}
	}

	index := &prefetched{url: base.ResolveReference(&url.URL{Path: IndexPage}).String()}
	html, err := c.fetch(ctx, index.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		index = nil
	} else {
		index.html = html
		add(index.url)
		links, err := c.Links.SelectLinks(html, base.String())
		if err == nil {
			for _, link := range links {
				add(link)
			}
		}
	}

	if c.Sitemaps != nil {
		urls, err := c.Sitemaps.DiscoverURLs(ctx, base.String())
		if err != nil && ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		for _, u := range urls {
			add(u)
		}
	}

	return pages, index, nil
}

// prefetched is a page body downloaded during discovery.
type prefetched struct {
	url  string
	html string
}

// fetchPage fetches a page and converts it to text.
func (c *SiteCrawler) fetchPage(ctx context.Context, page string, index *prefetched) docs2prompt.FetchOutcome {
	out := docs2prompt.FetchOutcome{Key: page}

	var html string
	if index != nil && index.url == page {
		html = index.html
	} else {
		var err error
		if html, err = c.fetch(ctx, page); err != nil {
			out.Err = err
			return out
		}
	}

	result, err := c.Extractor.Extract(html)
	if err != nil {
		out.Err = err
		return out
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return out
	}

	text, err := c.Converter.Convert(result.ContentHTML)
	if err != nil {
		out.Err = err
		return out
	}
	out.Content = strings.TrimSpace(text)
	return out
}

func (c *SiteCrawler) fetch(ctx context.Context, page string) (string, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, hostOf(page)); err != nil {
			return "", err
		}
	}
	return c.Fetcher.Fetch(ctx, page)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
