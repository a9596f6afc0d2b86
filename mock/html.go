package mock

import "github.com/fwojciec/docs2prompt"

// Compile-time interface verification.
var (
	_ docs2prompt.Converter     = (*Converter)(nil)
	_ docs2prompt.Extractor     = (*Extractor)(nil)
	_ docs2prompt.LinkExtractor = (*LinkExtractor)(nil)
	_ docs2prompt.LinkSelector  = (*LinkSelector)(nil)
)

// Converter is a mock implementation of docs2prompt.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Extractor is a mock implementation of docs2prompt.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docs2prompt.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docs2prompt.ExtractResult, error) {
	return e.ExtractFn(html)
}

// LinkExtractor is a mock implementation of docs2prompt.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(content string) ([]docs2prompt.Link, error)
}

func (e *LinkExtractor) ExtractLinks(content string) ([]docs2prompt.Link, error) {
	return e.ExtractLinksFn(content)
}

// LinkSelector is a mock implementation of docs2prompt.LinkSelector.
type LinkSelector struct {
	SelectLinksFn func(html string, baseURL string) ([]string, error)
}

func (s *LinkSelector) SelectLinks(html string, baseURL string) ([]string, error) {
	return s.SelectLinksFn(html, baseURL)
}
