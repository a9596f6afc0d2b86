package docs2prompt

import (
	"context"
	"strings"
)

// EntryType is the kind of a repository tree entry.
type EntryType string

// Entry types reported by a directory listing. Other values (symlink,
// submodule) are ignored by the walker.
const (
	EntryFile EntryType = "file"
	EntryDir  EntryType = "dir"
)

// RepoEntry is one item of a repository directory listing.
type RepoEntry struct {
	Name        string
	Path        string
	Type        EntryType
	DownloadURL string
}

// Repo identifies a repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// RepositoryService provides read access to a remote repository tree.
type RepositoryService interface {
	// ListContents returns the entries of the directory at path.
	// The empty path lists the repository root.
	// Returns ENOTFOUND if the repository or path does not exist and
	// EREMOTE for any other unsuccessful response.
	ListContents(ctx context.Context, owner, repo, path string) ([]*RepoEntry, error)

	// FetchRaw downloads the raw content of a file.
	FetchRaw(ctx context.Context, downloadURL string) (string, error)
}

// RepositorySearcher finds repositories by name.
type RepositorySearcher interface {
	// SearchRepositories returns repositories whose name matches query.
	SearchRepositories(ctx context.Context, query string) ([]Repo, error)
}

var repoURLPrefixes = []string{
	"https://github.com/",
	"http://github.com/",
	"github.com/",
}

// ParseRepo parses an "owner/repo" identifier. A github.com URL is accepted
// and reduced to its first two path segments.
// Returns EINVALID if the identifier has no owner or repository part.
func ParseRepo(identifier string) (Repo, error) {
	s := strings.TrimSpace(identifier)
	for _, prefix := range repoURLPrefixes {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.TrimSuffix(strings.Trim(s, "/"), ".git")

	owner, name, ok := strings.Cut(s, "/")
	if !ok {
		return Repo{}, Errorf(EINVALID, "repository identifier %q must be in the format owner/repo", identifier)
	}
	name, _, _ = strings.Cut(name, "/")
	name = strings.TrimSuffix(name, ".git")
	if owner == "" || name == "" {
		return Repo{}, Errorf(EINVALID, "repository identifier %q must be in the format owner/repo", identifier)
	}
	return Repo{Owner: owner, Name: name}, nil
}

// ResolveRepo turns an identifier into a Repo.
//
// Identifiers containing a "/" are parsed with ParseRepo. A bare name is
// looked up through searcher when one is given: exactly one repository with
// that name (case-insensitive) must exist. Returns EINVALID for a bare name
// without a searcher, ENOTFOUND for no match, ECONFLICT for several.
func ResolveRepo(ctx context.Context, identifier string, searcher RepositorySearcher) (Repo, error) {
	name := strings.TrimSpace(identifier)
	if strings.Contains(name, "/") || searcher == nil || name == "" {
		return ParseRepo(identifier)
	}

	found, err := searcher.SearchRepositories(ctx, name)
	if err != nil {
		return Repo{}, err
	}

	var matches []Repo
	for _, r := range found {
		if strings.EqualFold(r.Name, name) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return Repo{}, Errorf(ENOTFOUND, "no repository named %q found", name)
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, 0, len(matches))
		for _, m := range matches {
			candidates = append(candidates, m.String())
		}
		return Repo{}, Errorf(ECONFLICT, "repository name %q is ambiguous: %s", name, strings.Join(candidates, ", "))
	}
}
