// Package crawl implements documentation discovery: walking a repository
// tree, crawling documentation sites, and escalating from a README to the
// external documentation it links to.
//
// All work is sequential. Fetches are issued one at a time in depth-first
// order.
package crawl

import (
	"context"

	"github.com/fwojciec/docs2prompt"
)

// Walker discovers documentation files in a repository tree.
//
// By default only documentation folders (and everything below them) are
// entered besides the root. With FullRepo every directory is entered.
type Walker struct {
	Repos    docs2prompt.RepositoryService
	FullRepo bool
}

// Walk lists the repository from its root and collects every file that
// classifies as documentation, keyed by docs2prompt.DocumentKey.
//
// Listing failures abort the walk and no partial result is returned.
// Files whose content cannot be fetched are left out.
func (w *Walker) Walk(ctx context.Context, repo docs2prompt.Repo) (*docs2prompt.Collection, error) {
	docs := docs2prompt.NewCollection()
	if err := w.walkDir(ctx, repo, "", false, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// walkDir visits one directory. inDocs is set once the walk has entered a
// documentation folder and stays set for every descendant.
func (w *Walker) walkDir(ctx context.Context, repo docs2prompt.Repo, dir string, inDocs bool, docs *docs2prompt.Collection) error {
	entries, err := w.Repos.ListContents(ctx, repo.Owner, repo.Name, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		switch entry.Type {
		case docs2prompt.EntryDir:
			var err error
			switch {
			case docs2prompt.IsDocFolder(entry.Name):
				err = w.walkDir(ctx, repo, entry.Path, true, docs)
			case w.FullRepo || inDocs:
				err = w.walkDir(ctx, repo, entry.Path, inDocs, docs)
			}
			if err != nil {
				return err
			}

		case docs2prompt.EntryFile:
			if !docs2prompt.IsDocumentation(entry.Name, entry.Path) {
				continue
			}
			if !docs.Record(w.fetchFile(ctx, repo, entry)) {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (w *Walker) fetchFile(ctx context.Context, repo docs2prompt.Repo, entry *docs2prompt.RepoEntry) docs2prompt.FetchOutcome {
	out := docs2prompt.FetchOutcome{Key: docs2prompt.DocumentKey(repo.Name, entry.Path)}
	if entry.DownloadURL == "" {
		out.Err = docs2prompt.Errorf(docs2prompt.EINVALID, "%s has no download URL", entry.Path)
		return out
	}
	out.Content, out.Err = w.Repos.FetchRaw(ctx, entry.DownloadURL)
	return out
}
