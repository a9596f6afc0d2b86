package docs2prompt

import (
	"strings"
)

// docFileNames are basenames that are always documentation, wherever they
// appear in the tree.
var docFileNames = map[string]bool{
	"readme.md":   true,
	"readme.rst":  true,
	"readme.txt":  true,
	"index.md":    true,
	"docs.md":     true,
	"document.md": true,
}

// qualifiedExtensions are the extensions accepted inside documentation folders.
var qualifiedExtensions = []string{".md", ".mdx", ".txt", ".rst"}

// docFolders are directory names that mark a documentation subtree.
var docFolders = map[string]bool{
	"docs": true,
	"doc":  true,
}

// docKeywords mark a README link as pointing at external documentation.
var docKeywords = []string{"docs", "documentation", "guide", "doc"}

// IsDocFolder reports whether a directory name marks a documentation folder.
func IsDocFolder(name string) bool {
	return docFolders[strings.ToLower(name)]
}

// IsDocFileName reports whether a basename is an explicit documentation
// filename such as README.md.
func IsDocFileName(name string) bool {
	return docFileNames[strings.ToLower(name)]
}

// HasQualifiedExtension reports whether a basename ends with one of the
// documentation extensions.
func HasQualifiedExtension(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range qualifiedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsDocumentation classifies a repository file given its basename and its
// slash-separated path from the repository root.
//
// A file is documentation if its basename is an explicit documentation
// filename, or if any parent directory is a documentation folder and the
// basename has a qualified extension.
func IsDocumentation(name, path string) bool {
	if IsDocFileName(name) {
		return true
	}
	if !HasQualifiedExtension(name) {
		return false
	}
	parts := strings.Split(path, "/")
	for _, dir := range parts[:len(parts)-1] {
		if IsDocFolder(dir) {
			return true
		}
	}
	return false
}

// DocumentKey returns the collection key for a repository file.
func DocumentKey(repo, path string) string {
	return repo + "/" + strings.ToLower(path)
}

// ReadmeKey returns the collection key of a repository's root README.
func ReadmeKey(repo string) string {
	return DocumentKey(repo, "readme.md")
}

// IsDocLink reports whether a link's URL or anchor text mentions a
// documentation keyword.
func IsDocLink(l Link) bool {
	target := strings.ToLower(l.URL)
	text := strings.ToLower(l.Text)
	for _, kw := range docKeywords {
		if strings.Contains(target, kw) || strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
