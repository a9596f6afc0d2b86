// Package htmltomarkdown converts page HTML to plain Markdown text using
// github.com/JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docs2prompt"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ docs2prompt.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
//
// By default link targets and images are dropped: anchors are replaced by
// their text and images are removed.
type Converter struct {
	conv       *converter.Converter
	dropLinks  bool
	dropImages bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithDropLinks controls whether anchors are reduced to their text.
func WithDropLinks(drop bool) Option {
	return func(c *Converter) { c.dropLinks = drop }
}

// WithDropImages controls whether images are removed.
func WithDropImages(drop bool) Option {
	return func(c *Converter) { c.dropImages = drop }
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		dropLinks:  true,
		dropImages: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", docs2prompt.Errorf(docs2prompt.EINVALID, "empty HTML input")
	}

	if c.dropLinks || c.dropImages {
		pruned, err := c.prune(content)
		if err != nil {
			return "", err
		}
		content = pruned
	}

	result, err := c.conv.ConvertString(content)
	if err != nil {
		return "", err
	}

	return result, nil
}

// prune rewrites the document without the elements the converter drops.
func (c *Converter) prune(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", docs2prompt.Errorf(docs2prompt.EINVALID, "failed to parse HTML: %v", err)
	}

	c.pruneNode(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", docs2prompt.Errorf(docs2prompt.EINTERNAL, "failed to render HTML: %v", err)
	}
	return buf.String(), nil
}

func (c *Converter) pruneNode(n *html.Node) {
	child := n.FirstChild
	for child != nil {
		next := child.NextSibling
		if child.Type == html.ElementNode {
			switch {
			case c.dropImages && (child.DataAtom == atom.Img || child.DataAtom == atom.Picture):
				n.RemoveChild(child)
				child = next
				continue
			case c.dropLinks && child.DataAtom == atom.A:
				c.pruneNode(child)
				unwrap(child)
				child = next
				continue
			}
		}
		c.pruneNode(child)
		child = next
	}
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	for n.FirstChild != nil {
		child := n.FirstChild
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
	}
	parent.RemoveChild(n)
}
