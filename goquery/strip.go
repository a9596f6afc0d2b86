package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docs2prompt"
)

var _ docs2prompt.Extractor = (*Stripper)(nil)

// BoilerplateSelector matches the structural elements removed from a page
// before conversion.
const BoilerplateSelector = "nav, header, footer, script, style, aside"

// Stripper is the default Extractor: it removes boilerplate elements and
// keeps everything else.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Extract implements docs2prompt.Extractor.
func (s *Stripper) Extract(html string) (*docs2prompt.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return &docs2prompt.ExtractResult{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find(BoilerplateSelector).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINTERNAL, "failed to render HTML: %v", err)
	}

	return &docs2prompt.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(body),
	}, nil
}
