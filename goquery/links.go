package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docs2prompt"
)

var _ docs2prompt.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor finds absolute links in README content. READMEs mix
// Markdown with inline HTML, so both inline Markdown links and HTML anchors
// are returned: Markdown links first, then anchors, without duplicates.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks implements docs2prompt.LinkExtractor.
func (e *LinkExtractor) ExtractLinks(content string) ([]docs2prompt.Link, error) {
	links := docs2prompt.ExtractMarkdownLinks(content)

	seen := make(map[docs2prompt.Link]bool, len(links))
	for _, l := range links {
		seen[l] = true
	}

	if !strings.Contains(content, "<a") {
		return links, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(strings.ToLower(href), "http") {
			return
		}
		l := docs2prompt.Link{Text: strings.TrimSpace(sel.Text()), URL: href}
		if seen[l] {
			return
		}
		seen[l] = true
		links = append(links, l)
	})

	return links, nil
}
