package crawl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docs2prompt"
	"github.com/fwojciec/docs2prompt/crawl"
	"github.com/fwojciec/docs2prompt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSite serves pages from a map and records every fetch.
type fakeSite struct {
	pages   map[string]string
	links   map[string][]string
	fetched []string
}

func (f *fakeSite) crawler() *crawl.SiteCrawler {
	return &crawl.SiteCrawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				f.fetched = append(f.fetched, url)
				html, ok := f.pages[url]
				if !ok {
					return "", docs2prompt.Errorf(docs2prompt.ENOTFOUND, "%s: 404", url)
				}
				return html, nil
			},
		},
		Links: &mock.LinkSelector{
			SelectLinksFn: func(html string, _ string) ([]string, error) {
				return f.links[html], nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*docs2prompt.ExtractResult, error) {
				return &docs2prompt.ExtractResult{ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "  " + strings.ToUpper(html) + "\n", nil
			},
		},
	}
}

func TestSiteCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("crawls index page and its relative links", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{
				"https://docs.example.com/index.html": "index",
				"https://docs.example.com/guide":      "guide",
				"https://docs.example.com/api":        "api",
			},
			links: map[string][]string{
				"index": {"https://docs.example.com/guide", "https://docs.example.com/api"},
			},
		}
		c := site.crawler()

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/index.html",
			"https://docs.example.com/guide",
			"https://docs.example.com/api",
		}, docs.Keys())
		content, _ := docs.Get("https://docs.example.com/guide")
		assert.Equal(t, "GUIDE", content)
		assert.Equal(t, 1, strings.Count(strings.Join(site.fetched, " "), "index.html"), "index page is fetched once")
	})

	t.Run("missing index page yields empty collection", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{}
		c := site.crawler()

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		assert.Equal(t, 0, docs.Len())
		assert.Equal(t, []string{"https://docs.example.com/index.html"}, site.fetched)
	})

	t.Run("skips pages whose fetch fails", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{
				"https://docs.example.com/index.html": "index",
				"https://docs.example.com/ok":         "ok",
			},
			links: map[string][]string{
				"index": {"https://docs.example.com/missing", "https://docs.example.com/ok"},
			},
		}
		c := site.crawler()

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/index.html",
			"https://docs.example.com/ok",
		}, docs.Keys())
	})

	t.Run("does not refetch seen pages and marks new ones", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{
				"https://docs.example.com/index.html": "index",
				"https://docs.example.com/a":          "a",
				"https://docs.example.com/b":          "b",
			},
			links: map[string][]string{
				"index": {"https://docs.example.com/a", "https://docs.example.com/b"},
			},
		}
		c := site.crawler()
		seen := docs2prompt.NewVisitedSet("https://docs.example.com/a")

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", seen)

		require.NoError(t, err)
		assert.False(t, docs.Has("https://docs.example.com/a"))
		assert.True(t, docs.Has("https://docs.example.com/b"))
		assert.NotContains(t, site.fetched, "https://docs.example.com/a")
		assert.True(t, seen.Has("https://docs.example.com/b"))
		assert.True(t, seen.Has("https://docs.example.com/index.html"))
	})

	t.Run("records pages with no extractable content as empty", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{"https://docs.example.com/index.html": "   "},
		}
		c := site.crawler()

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		content, ok := docs.Get("https://docs.example.com/index.html")
		assert.True(t, ok)
		assert.Empty(t, content)
	})

	t.Run("adds sitemap URLs after index links", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{
				"https://docs.example.com/index.html": "index",
				"https://docs.example.com/a":          "a",
				"https://docs.example.com/deep/b":     "b",
			},
			links: map[string][]string{
				"index": {"https://docs.example.com/a"},
			},
		}
		c := site.crawler()
		c.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string) ([]string, error) {
				assert.Equal(t, "https://docs.example.com/", baseURL)
				return []string{"https://docs.example.com/a", "https://docs.example.com/deep/b"}, nil
			},
		}

		docs, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/index.html",
			"https://docs.example.com/a",
			"https://docs.example.com/deep/b",
		}, docs.Keys())
	})

	t.Run("waits on rate limiter per host", func(t *testing.T) {
		t.Parallel()

		site := &fakeSite{
			pages: map[string]string{"https://docs.example.com/index.html": "index"},
		}
		c := site.crawler()
		var hosts []string
		c.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				hosts = append(hosts, domain)
				return nil
			},
		}

		_, err := c.Crawl(context.Background(), "https://docs.example.com/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"docs.example.com"}, hosts)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		c := (&fakeSite{}).crawler()

		_, err := c.Crawl(context.Background(), "not a url", nil)

		assert.Equal(t, docs2prompt.EINVALID, docs2prompt.ErrorCode(err))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := (&fakeSite{}).crawler()
		c.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, _ string) (string, error) {
				return "", ctx.Err()
			},
		}

		_, err := c.Crawl(ctx, "https://docs.example.com/", nil)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}
