// Package github lists and downloads repository files through the GitHub
// REST API using github.com/google/go-github.
package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/fwojciec/docs2prompt"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// searchLimit caps the number of search results considered when resolving
// a bare repository name.
const searchLimit = 20

var (
	_ docs2prompt.RepositoryService  = (*Client)(nil)
	_ docs2prompt.RepositorySearcher = (*Client)(nil)
)

// Client wraps the go-github client.
type Client struct {
	gh *gh.Client

	token   string
	baseURL string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with a personal access token. An empty
// token leaves requests anonymous.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a GitHub API client.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	hc := &http.Client{}
	if c.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		hc = oauth2.NewClient(ctx, ts)
	}
	hc.Timeout = c.timeout
	c.gh = gh.NewClient(hc)

	if c.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "invalid GitHub API URL %q: %v", c.baseURL, err)
		}
		c.gh.BaseURL = base
	}

	return c, nil
}

// ListContents implements docs2prompt.RepositoryService. An empty path lists
// the repository root.
func (c *Client) ListContents(ctx context.Context, owner, repo, path string) ([]*docs2prompt.RepoEntry, error) {
	file, dir, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, wrapError(ctx, err, "list "+owner+"/"+repo+"/"+path)
	}
	if file != nil {
		return nil, docs2prompt.Errorf(docs2prompt.EINVALID, "%s/%s/%s is a file, not a directory", owner, repo, path)
	}

	entries := make([]*docs2prompt.RepoEntry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, &docs2prompt.RepoEntry{
			Name:        item.GetName(),
			Path:        item.GetPath(),
			Type:        docs2prompt.EntryType(item.GetType()),
			DownloadURL: item.GetDownloadURL(),
		})
	}
	return entries, nil
}

// FetchRaw implements docs2prompt.RepositoryService.
func (c *Client) FetchRaw(ctx context.Context, downloadURL string) (string, error) {
	req, err := c.gh.NewRequest(http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", docs2prompt.Errorf(docs2prompt.EINVALID, "invalid download URL %q: %v", downloadURL, err)
	}

	var buf bytes.Buffer
	if _, err := c.gh.Do(ctx, req, &buf); err != nil {
		return "", wrapError(ctx, err, "download "+downloadURL)
	}
	return buf.String(), nil
}

// SearchRepositories implements docs2prompt.RepositorySearcher by searching
// repository names.
func (c *Client) SearchRepositories(ctx context.Context, name string) ([]docs2prompt.Repo, error) {
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: searchLimit}}
	result, _, err := c.gh.Search.Repositories(ctx, name+" in:name", opts)
	if err != nil {
		return nil, wrapError(ctx, err, "search repositories")
	}

	repos := make([]docs2prompt.Repo, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, docs2prompt.Repo{Owner: r.GetOwner().GetLogin(), Name: r.GetName()})
	}
	return repos, nil
}

// wrapError converts go-github errors to docs2prompt errors.
func wrapError(ctx context.Context, err error, operation string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return docs2prompt.Errorf(docs2prompt.EREMOTE, "%s: GitHub rate limit exceeded, resets at %s",
			operation, rateLimitErr.Rate.Reset.Format(time.RFC3339))
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		if ghErr.Response.StatusCode == http.StatusNotFound {
			return docs2prompt.Errorf(docs2prompt.ENOTFOUND, "%s: not found", operation)
		}
		return docs2prompt.Errorf(docs2prompt.EREMOTE, "%s: GitHub API error %d: %s",
			operation, ghErr.Response.StatusCode, ghErr.Message)
	}

	return docs2prompt.Errorf(docs2prompt.EREMOTE, "%s: %v", operation, err)
}
