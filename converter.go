package docs2prompt

// Converter converts HTML to plain text.
type Converter interface {
	// Convert transforms HTML content into text.
	// The input should already have boilerplate removed (see Extractor).
	Convert(html string) (string, error)
}
