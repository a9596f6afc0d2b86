package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docs2prompt"
)

var _ docs2prompt.CollectionWriter = (*DirWriter)(nil)

// URLToPath converts a documentation URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		return "index.md", nil
	case strings.HasSuffix(p, "/"):
		return p + "index.md", nil
	case strings.HasSuffix(p, ".html"):
		return strings.TrimSuffix(p, ".html") + ".md", nil
	case path.Ext(p) != "":
		return p, nil
	default:
		return p + ".md", nil
	}
}

// KeyToPath converts a document key to a relative slash-separated file
// path. Crawled pages are placed under their host, repository files keep
// their key. Keys escaping the tree are rejected.
func KeyToPath(key string) (string, error) {
	if u, err := url.Parse(key); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		rel, err := URLToPath(key)
		if err != nil {
			return "", err
		}
		key = u.Host + "/" + rel
	}

	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", docs2prompt.Errorf(docs2prompt.EINVALID, "document key %q escapes the output directory", key)
		}
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" {
		return "", docs2prompt.Errorf(docs2prompt.EINVALID, "document key %q is not a valid path", key)
	}
	return cleaned, nil
}

// DirWriter writes every document of a collection to its own file.
type DirWriter struct{}

// NewDirWriter creates a new DirWriter.
func NewDirWriter() *DirWriter {
	return &DirWriter{}
}

// WriteCollection implements docs2prompt.CollectionWriter. Documents are
// saved under dir+".tmp", which replaces dir once all writes succeed.
func (w *DirWriter) WriteCollection(ctx context.Context, dir string, c *docs2prompt.Collection) error {
	if dir == "" {
		return docs2prompt.Errorf(docs2prompt.EINVALID, "output directory required")
	}
	tmp := filepath.Clean(dir) + ".tmp"
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}

	if err := w.save(ctx, tmp, c); err != nil {
		_ = os.RemoveAll(tmp)
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.Rename(tmp, dir)
}

func (w *DirWriter) save(ctx context.Context, root string, c *docs2prompt.Collection) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	for _, doc := range c.Documents() {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := KeyToPath(doc.Key)
		if err != nil {
			return err
		}
		full := filepath.Join(root, filepath.FromSlash(rel))

		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(full, []byte(FormatDocument(doc)), 0644); err != nil {
			return err
		}
	}
	return nil
}

// FormatDocument formats a document with YAML frontmatter naming its key.
func FormatDocument(doc *docs2prompt.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.Key)
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}
