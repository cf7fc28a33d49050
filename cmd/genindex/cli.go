package main

import (
	"context"
	"io"

	"github.com/fwojciec/genindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source    genindex.DocumentSource
	Extractor genindex.Extractor
	Writer    genindex.IndexWriter

	// Optional services, nil when disabled.
	Sitemap genindex.SitemapWriter
	Dedupe  genindex.Deduplicator
}

// CLI defines the command-line interface structure for Kong.
// Nil pointers and empty lists mean the setting comes from the config file
// or its defaults.
type CLI struct {
	Root          string   `arg:"" optional:"" default:"." help:"Content directory to index"`
	Output        *string  `short:"o" help:"Index file to write (default: search-index.json)"`
	SnippetLength *int     `short:"n" name:"snippet-length" help:"Maximum content snippet length in characters (default: 200)"`
	IgnoreKeyword *string  `name:"ignore-keyword" help:"Skip files whose name contains this keyword; empty disables (default: component)"`
	IgnoreDir     []string `name:"ignore-dir" help:"Skip files under directories with this name (repeatable, default: images,SupportHeaders)"`
	Exclude       []string `short:"x" help:"Skip files whose relative path matches this regex (repeatable)"`
	Ext           *string  `help:"Extension of the documents to index (default: .html)"`
	Extractor     string   `short:"e" default:"goquery" enum:"goquery,readability,trafilatura" help:"Text extraction technology (goquery, readability, trafilatura)"`
	Config        string   `short:"c" help:"YAML file with settings and cleaning rules"`
	Dedupe        bool     `help:"Skip pages repeating an already indexed title and content"`
	SitemapBase   string   `name:"sitemap-base" help:"Also write sitemap.xml next to the index, with URLs resolved against this base"`
	Verbose       bool     `short:"v" help:"Log extraction diagnostics to stderr"`
	Quiet         bool     `short:"q" help:"Only print failures and the summary"`
}

// IndexCmd builds and writes the search index.
type IndexCmd struct {
	Root        string
	Output      string
	SitemapPath string
	Filter      *genindex.SkipFilter
	Cleaner     *genindex.Cleaner
	Quiet       bool
	Color       bool
}
