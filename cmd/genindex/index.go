package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/genindex"
	"github.com/fwojciec/genindex/build"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	b := &build.Builder{
		Root:      c.Root,
		Source:    deps.Source,
		Filter:    c.Filter,
		Extractor: deps.Extractor,
		Cleaner:   c.Cleaner,
		Dedupe:    deps.Dedupe,
		Progress:  c.progress(deps),
	}

	idx, err := b.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", genindex.ErrorMessage(err))
		return err
	}

	if err := deps.Writer.WriteIndex(deps.Ctx, c.Output, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing index: %v\n", err)
		return err
	}

	if deps.Sitemap != nil {
		if err := deps.Sitemap.WriteSitemap(deps.Ctx, c.SitemapPath, idx); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing sitemap: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "%s generated with %d pages\n", c.Output, idx.Len())
	return nil
}

// progress returns the callback printing one line per document.
func (c *IndexCmd) progress(deps *Dependencies) genindex.ProgressFunc {
	processed := color.New(color.FgGreen)
	skipped := color.New(color.FgYellow)
	failed := color.New(color.FgRed)
	for _, col := range []*color.Color{processed, skipped, failed} {
		if c.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	return func(p genindex.Progress) {
		switch p.Status {
		case genindex.StatusFailed:
			fmt.Fprintf(deps.Stderr, "%s %s: %v\n", failed.Sprint("Failed to process"), p.Path, p.Error)
		case genindex.StatusSkipped:
			if !c.Quiet {
				fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %s\n", p.Completed, p.Total, skipped.Sprint(skipStatus(p.Reason)), p.Path)
			}
		case genindex.StatusProcessed:
			if !c.Quiet {
				fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %s\n", p.Completed, p.Total, processed.Sprint("Processed"), p.Record.ID)
			}
		}
	}
}

func skipStatus(r genindex.SkipReason) string {
	switch r.Kind {
	case genindex.SkipKeyword:
		return fmt.Sprintf("Skipped (%s)", r.Match)
	case genindex.SkipDirectory:
		return fmt.Sprintf("Skipped (%s dir)", r.Match)
	default:
		return fmt.Sprintf("Skipped (%s)", r.Kind)
	}
}
