package docs2prompt

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, if one could be found.
	Title string

	// ContentHTML is the page content with boilerplate (navigation,
	// headers, footers, scripts, styles, sidebars) removed.
	ContentHTML string
}

// Extractor removes boilerplate from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the remaining content.
	// An empty page yields an empty ContentHTML, not an error.
	Extract(html string) (*ExtractResult, error)
}
