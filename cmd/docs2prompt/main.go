package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docs2prompt"
	"github.com/fwojciec/docs2prompt/crawl"
	"github.com/fwojciec/docs2prompt/fs"
	"github.com/fwojciec/docs2prompt/gemini"
	"github.com/fwojciec/docs2prompt/github"
	"github.com/fwojciec/docs2prompt/goquery"
	"github.com/fwojciec/docs2prompt/htmltomarkdown"
	d2phttp "github.com/fwojciec/docs2prompt/http"
	"github.com/fwojciec/docs2prompt/readability"
	"github.com/fwojciec/docs2prompt/rod"
	d2pslog "github.com/fwojciec/docs2prompt/slog"
	"github.com/fwojciec/docs2prompt/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", docs2prompt.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// A missing file is ignored.
	EnvFile string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env"}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docs2prompt"),
		kong.Description("Collect project documentation into a single prompt-ready text blob"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if (cli.Repo == "") == (cli.URL == "") {
		return docs2prompt.Errorf(docs2prompt.EINVALID, "You must provide exactly one of --repo or --url.")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Output: fs.NewWriter(),
		Split:  fs.NewDirWriter(),
	}

	collector := &crawl.Collector{Links: goquery.NewLinkExtractor()}

	if cli.Repo != "" {
		client, err := github.NewClient(ctx,
			github.WithToken(cli.Token),
			github.WithBaseURL(cli.GitHubAPIURL),
			github.WithTimeout(cli.Timeout),
		)
		if err != nil {
			return err
		}
		collector.Repos = client
		if cli.Verbose {
			collector.Repos = d2pslog.NewLoggingRepositoryService(client, logger)
		}
		if cli.Search {
			collector.Searcher = client
			if cli.Verbose {
				collector.Searcher = d2pslog.NewLoggingRepositorySearcher(client, logger)
			}
		}
	}

	// The site crawler is only needed for --url or README escalation, so
	// a browser is never launched for a plain repository walk.
	if cli.URL != "" || cli.External {
		site, closeFn, err := m.siteCrawler(cli, logger, stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		collector.Crawler = site
	}
	deps.Collector = collector

	if cli.CountTokens {
		tc, err := gemini.NewTokenCounter("")
		if err != nil {
			fmt.Fprintf(stderr, "warning: token counting disabled: %s\n", docs2prompt.ErrorMessage(err))
		} else {
			deps.Tokens = tc
		}
	}

	cmd := &DocsCmd{
		Repo:     cli.Repo,
		URL:      cli.URL,
		Format:   docs2prompt.ParseFormat(cli.Format),
		Output:   cli.Output,
		SplitDir: cli.SplitDir,
		Options: crawl.RepoOptions{
			FullRepo:              cli.FullRepo,
			ExternalDocumentation: cli.External,
		},
	}

	return cmd.Run(deps)
}

// siteCrawler wires the web crawling stack selected by the flags.
func (m *Main) siteCrawler(cli *CLI, logger *slog.Logger, stderr io.Writer) (*crawl.SiteCrawler, func(), error) {
	var fetcher docs2prompt.Fetcher
	if cli.Render {
		rf, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rf
	} else {
		fetcher = d2phttp.NewFetcher(d2phttp.WithTimeout(cli.Timeout))
	}
	if cli.Verbose {
		fetcher = d2pslog.NewLoggingFetcher(fetcher, logger)
	}

	site := &crawl.SiteCrawler{
		Fetcher:     fetcher,
		Links:       goquery.NewRelativeLinkSelector(),
		Extractor:   newExtractor(cli.Extractor),
		Converter:   htmltomarkdown.NewConverter(),
		RateLimiter: crawl.NewDomainLimiter(cli.Rate),
	}

	if cli.Sitemap {
		sitemaps := d2phttp.NewSitemapService(&http.Client{Timeout: cli.Timeout})
		site.Sitemaps = sitemaps
		if cli.Verbose {
			site.Sitemaps = d2pslog.NewLoggingSitemapService(sitemaps, logger)
		}
	}

	return site, func() { _ = fetcher.Close() }, nil
}

func newExtractor(name string) docs2prompt.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewStripper()
	}
}
