package docs2prompt

import "regexp"

// Link is an outbound hyperlink found in a document.
type Link struct {
	Text string
	URL  string
}

// LinkExtractor extracts outbound links from README-like content that may
// mix literal HTML anchors with markdown.
type LinkExtractor interface {
	// ExtractLinks returns links with absolute http(s) targets.
	ExtractLinks(content string) ([]Link, error)
}

// LinkSelector selects the pages a crawl should follow from an HTML page.
type LinkSelector interface {
	// SelectLinks parses html and returns same-site relative links resolved
	// against baseURL, in document order and without duplicates.
	SelectLinks(html string, baseURL string) ([]string, error)
}

var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)

// ExtractMarkdownLinks returns inline markdown links of the form
// [text](http://...) in order of appearance.
func ExtractMarkdownLinks(content string) []Link {
	matches := markdownLinkRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	return links
}
