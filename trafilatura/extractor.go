// Package trafilatura extracts the main content of a page with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docs2prompt"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ docs2prompt.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Comment sections are excluded and
// the readability and dom-distiller fallbacks are enabled.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}}
}

// Extract implements docs2prompt.Extractor. Pages without recognizable main
// content yield an empty result.
func (e *Extractor) Extract(rawHTML string) (*docs2prompt.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &docs2prompt.ExtractResult{}, nil
	}

	// go-trafilatura reports pages without main content as errors.
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil || result == nil {
		return &docs2prompt.ExtractResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, docs2prompt.Errorf(docs2prompt.EINTERNAL, "render content: %v", err)
		}
		contentHTML = buf.String()
	}

	return &docs2prompt.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
