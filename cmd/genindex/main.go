package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/genindex"
	"github.com/fwojciec/genindex/bloom"
	"github.com/fwojciec/genindex/config"
	"github.com/fwojciec/genindex/fs"
	"github.com/fwojciec/genindex/goquery"
	"github.com/fwojciec/genindex/readability"
	genslog "github.com/fwojciec/genindex/slog"
	"github.com/fwojciec/genindex/trafilatura"
)

// SitemapFile is written next to the index when a sitemap base is given.
const SitemapFile = "sitemap.xml"

// Sizing of the duplicate pre-check. The exact set behind it is unbounded.
const (
	dedupeCapacity = 10000
	dedupeFPRate   = 0.001
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("genindex"),
		kong.Description("Generate a JSON search index from a directory of HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if (len(args) == 1 && args[0] == "help") || slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", genindex.ErrorMessage(err))
		return err
	}

	filter, err := cfg.SkipFilter()
	if err != nil {
		return err
	}
	cleaner, err := cfg.Cleaner()
	if err != nil {
		return err
	}

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", genindex.ErrorMessage(err))
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Source:    fs.NewSource(cfg.Extension),
		Extractor: extractor,
		Writer:    fs.NewIndexWriter(),
	}

	var dedupe *bloom.Set
	if cli.Dedupe {
		dedupe = bloom.NewSet(dedupeCapacity, dedupeFPRate)
		deps.Dedupe = dedupe
	}

	cmd := &IndexCmd{
		Root:    cli.Root,
		Output:  cfg.Output,
		Filter:  filter,
		Cleaner: cleaner,
		Quiet:   cli.Quiet,
		Color:   stdout == os.Stdout && !color.NoColor,
	}

	if cli.SitemapBase != "" {
		sitemap, err := fs.NewSitemapWriter(cli.SitemapBase)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", genindex.ErrorMessage(err))
			return err
		}
		deps.Sitemap = sitemap
		cmd.SitemapPath = filepath.Join(filepath.Dir(cfg.Output), SitemapFile)
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Source = genslog.NewLoggingSource(deps.Source, logger)
		deps.Extractor = genslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Writer = genslog.NewLoggingIndexWriter(deps.Writer, logger)
		if deps.Sitemap != nil {
			deps.Sitemap = genslog.NewLoggingSitemapWriter(deps.Sitemap, logger)
		}
	}

	err = cmd.Run(deps)
	if logger != nil && dedupe != nil {
		logger.Info("dedupe",
			"distinct", dedupe.Len(),
			"estimated", dedupe.EstimatedCount(),
		)
	}
	return err
}

// loadConfig reads the config file and applies the flags set on top of it.
func loadConfig(cli *CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.Output != nil {
		cfg.Output = *cli.Output
	}
	if cli.SnippetLength != nil {
		cfg.SnippetLength = *cli.SnippetLength
	}
	if cli.IgnoreKeyword != nil {
		cfg.IgnoreKeyword = *cli.IgnoreKeyword
	}
	if len(cli.IgnoreDir) > 0 {
		cfg.IgnoreDirs = cli.IgnoreDir
	}
	if len(cli.Exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, cli.Exclude...)
	}
	if cli.Ext != nil && *cli.Ext != "" {
		cfg.Extension = *cli.Ext
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newExtractor returns the extractor registered under name.
func newExtractor(name string) (genindex.Extractor, error) {
	switch name {
	case "", "goquery":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, genindex.Errorf(genindex.EINVALID, "unknown extractor %q", name)
	}
}
