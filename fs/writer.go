// Package fs writes serialized documentation to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docs2prompt"
)

var _ docs2prompt.OutputWriter = (*Writer)(nil)

// Writer writes output files atomically: content goes to a temporary file
// in the target directory which is then renamed over the target.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteOutput implements docs2prompt.OutputWriter. Missing parent
// directories are created.
func (w *Writer) WriteOutput(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return docs2prompt.Errorf(docs2prompt.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
