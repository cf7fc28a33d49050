package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/genindex"
)

// Ensure LoggingIndexWriter implements genindex.IndexWriter.
var _ genindex.IndexWriter = (*LoggingIndexWriter)(nil)

// LoggingIndexWriter wraps an IndexWriter with logging.
type LoggingIndexWriter struct {
	next   genindex.IndexWriter
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter.
func NewLoggingIndexWriter(next genindex.IndexWriter, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(ctx context.Context, path string, idx *genindex.Index) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write index",
			"path", path,
			"records", idx.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(ctx, path, idx)
}

// Ensure LoggingSitemapWriter implements genindex.SitemapWriter.
var _ genindex.SitemapWriter = (*LoggingSitemapWriter)(nil)

// LoggingSitemapWriter wraps a SitemapWriter with logging.
type LoggingSitemapWriter struct {
	next   genindex.SitemapWriter
	logger *slog.Logger
}

// NewLoggingSitemapWriter creates a new LoggingSitemapWriter.
func NewLoggingSitemapWriter(next genindex.SitemapWriter, logger *slog.Logger) *LoggingSitemapWriter {
	return &LoggingSitemapWriter{next: next, logger: logger}
}

// WriteSitemap delegates to the wrapped writer and logs the operation.
func (w *LoggingSitemapWriter) WriteSitemap(ctx context.Context, path string, idx *genindex.Index) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write sitemap",
			"path", path,
			"urls", idx.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSitemap(ctx, path, idx)
}
