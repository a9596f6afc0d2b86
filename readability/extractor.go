// Package readability extracts the main content of a page with
// github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/docs2prompt"
	"github.com/go-shiori/go-readability"
)

var _ docs2prompt.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements docs2prompt.Extractor.
func (e *Extractor) Extract(rawHTML string) (*docs2prompt.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &docs2prompt.ExtractResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "extract content: %v", err)
	}

	return &docs2prompt.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
