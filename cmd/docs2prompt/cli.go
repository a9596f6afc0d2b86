package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docs2prompt"
	"github.com/fwojciec/docs2prompt/crawl"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Repo string `help:"GitHub repository as owner/repo, or a bare name with --search"`
	URL  string `name:"url" help:"Documentation URL; the index page and the pages it links to are crawled"`

	Token        string `env:"GITHUB_TOKEN" help:"GitHub auth token (only used with --repo)"`
	GitHubAPIURL string `name:"github-api-url" env:"GITHUB_API_URL" hidden:"" help:"GitHub API root"`

	Format    string `enum:"default,xml,markdown" default:"default" help:"Output format: default, xml or markdown"`
	Output    string `short:"o" help:"Write the result to a file instead of stdout"`
	SplitDir  string `name:"split-dir" placeholder:"DIR" help:"Also write every document to its own file under DIR"`
	FullRepo  bool   `name:"full-repo" aliases:"full_repo" help:"Collect documentation files from the whole repository"`
	External  bool   `name:"external-documentation" aliases:"external_documentation" help:"Also crawl documentation sites linked from the README"`
	Search    bool   `help:"Resolve bare repository names through GitHub search"`
	Render    bool   `help:"Render pages in headless Chrome before extraction"`
	Extractor string `enum:"strip,trafilatura,readability" default:"strip" help:"Content extractor for web pages"`
	Sitemap   bool   `help:"Add sitemap URLs under the documentation path to a site crawl"`

	Rate        float64       `default:"0" help:"Requests per second per host during site crawls (0 = unlimited)"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Request timeout"`
	CountTokens bool          `name:"count-tokens" help:"Report the Gemini token count of the output"`
	Verbose     bool          `short:"v" help:"Log requests to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Collector *crawl.Collector
	Output    docs2prompt.OutputWriter
	Split     docs2prompt.CollectionWriter

	// Tokens is nil unless token counting was requested.
	Tokens docs2prompt.TokenCounter
}

// DocsCmd collects documentation from one source and emits it.
type DocsCmd struct {
	Repo     string
	URL      string
	Format   docs2prompt.Format
	Output   string
	SplitDir string
	Options  crawl.RepoOptions
}
