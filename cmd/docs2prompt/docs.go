package main

import (
	"fmt"

	"github.com/fwojciec/docs2prompt"
	"github.com/fwojciec/docs2prompt/crawl"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	var (
		docs *docs2prompt.Collection
		err  error
	)
	if c.Repo != "" {
		docs, err = c.collectRepo(deps)
	} else {
		docs, err = c.collectSite(deps)
	}
	if err != nil {
		return err
	}

	content := docs2prompt.Serialize(docs, c.Format)

	if c.SplitDir != "" {
		if err := deps.Split.WriteCollection(deps.Ctx, c.SplitDir, docs); err != nil {
			return failf(err, "Error writing output")
		}
	}

	if c.Output != "" {
		if err := deps.Output.WriteOutput(deps.Ctx, c.Output, content); err != nil {
			return failf(err, "Error writing output")
		}
		fmt.Fprintf(deps.Stdout, "Documentation written to %s\n", c.Output)
	} else {
		fmt.Fprintln(deps.Stdout, content)
	}

	c.summarize(deps, docs, content)
	return nil
}

func (c *DocsCmd) collectRepo(deps *Dependencies) (*docs2prompt.Collection, error) {
	repo, err := deps.Collector.Resolve(deps.Ctx, c.Repo)
	if err != nil {
		return nil, failf(err, "Error resolving repository")
	}

	docs, err := deps.Collector.CollectRepo(deps.Ctx, repo, c.Options)
	if err != nil {
		return nil, failf(err, "Error fetching documentation from GitHub")
	}
	if docs.Len() == 0 {
		return nil, docs2prompt.Errorf(docs2prompt.ENOTFOUND, "No documentation files found in the GitHub repository.")
	}
	return docs, nil
}

func (c *DocsCmd) collectSite(deps *Dependencies) (*docs2prompt.Collection, error) {
	docs, err := deps.Collector.CollectSite(deps.Ctx, c.URL)
	if err != nil {
		return nil, failf(err, "Error fetching documentation from URL")
	}
	if docs.Len() == 0 {
		return nil, docs2prompt.Errorf(docs2prompt.ENOTFOUND, "No documentation found at the provided URL.")
	}
	return docs, nil
}

// summarize reports collection size on stderr so stdout stays pipeable.
func (c *DocsCmd) summarize(deps *Dependencies, docs *docs2prompt.Collection, content string) {
	line := "Collected " + crawl.Summary(docs.Len(), len(content))
	if deps.Tokens != nil {
		n, err := deps.Tokens.CountTokens(deps.Ctx, content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: token count failed: %s\n", docs2prompt.ErrorMessage(err))
		} else {
			line += ", " + crawl.FormatTokens(n)
		}
	}
	fmt.Fprintln(deps.Stderr, line)
}

// failf prefixes err's message while keeping its code.
func failf(err error, prefix string) error {
	return docs2prompt.Errorf(docs2prompt.ErrorCode(err), "%s: %s", prefix, docs2prompt.ErrorMessage(err))
}
