package docs2prompt

import "context"

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds the URLs listed in a site's sitemaps that live under
	// baseURL's path. It checks robots.txt for sitemap directives, then
	// falls back to /sitemap.xml. Sitemap indexes are resolved recursively.
	// A site without sitemaps yields an empty slice.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
