// Package goquery implements HTML parsing on top of
// github.com/PuerkitoBio/goquery: link selection for site crawls, link
// extraction from READMEs and boilerplate stripping.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docs2prompt"
)

var _ docs2prompt.LinkSelector = (*RelativeLinkSelector)(nil)

// RelativeLinkSelector selects the same-site links of a page: anchors whose
// href is relative rather than an absolute URL.
type RelativeLinkSelector struct{}

// NewRelativeLinkSelector creates a new RelativeLinkSelector.
func NewRelativeLinkSelector() *RelativeLinkSelector {
	return &RelativeLinkSelector{}
}

// SelectLinks returns the relative links of html resolved against baseURL,
// deduplicated, in document order. Fragments are stripped and links that
// resolve back to baseURL are dropped.
func (s *RelativeLinkSelector) SelectLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isAbsoluteLink(href) || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves href against base with the fragment stripped.
// Returns "" when href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isAbsoluteLink reports whether href points at an absolute or
// protocol-relative URL.
func isAbsoluteLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "http") || strings.HasPrefix(href, "//")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
