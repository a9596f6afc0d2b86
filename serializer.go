package docs2prompt

import (
	"strconv"
	"strings"
)

// Format selects an output encoding for Serialize.
type Format string

// Supported output formats.
const (
	FormatDefault  Format = "default"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "markdown"
)

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{string(FormatDefault), string(FormatXML), string(FormatMarkdown)}
}

// ParseFormat returns the Format named by s. Unrecognized names fall back to
// FormatDefault.
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXML, FormatMarkdown:
		return f
	default:
		return FormatDefault
	}
}

// Serialize renders the collection as one flat text blob in iteration order.
// Content is embedded verbatim; nothing is escaped.
func Serialize(c *Collection, format Format) string {
	s := &serializer{format: ParseFormat(string(format))}
	for _, doc := range c.Documents() {
		s.write(doc)
	}
	return strings.Join(s.lines, "\n")
}

// serializer holds the state of a single Serialize call.
type serializer struct {
	format Format
	lines  []string
	index  int
}

func (s *serializer) emit(lines ...string) {
	s.lines = append(s.lines, lines...)
}

func (s *serializer) write(doc *Document) {
	switch s.format {
	case FormatXML:
		s.emit(
			`<document index="`+strconv.Itoa(s.index)+`">`,
			"<source>"+doc.Key+"</source>",
			"<document_content>",
			doc.Content,
			"</document_content>",
			"</document>",
		)
		s.index++
	case FormatMarkdown:
		s.emit("## "+doc.Key, "---", doc.Content, "---")
	default:
		s.emit(doc.Key, "---", doc.Content, "", "---")
	}
}
