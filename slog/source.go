package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/genindex"
)

// Ensure LoggingSource implements genindex.DocumentSource.
var _ genindex.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with logging.
type LoggingSource struct {
	next   genindex.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next genindex.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the file count.
func (s *LoggingSource) Discover(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discover",
			"root", root,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, root)
}

// ReadDocument delegates to the wrapped source and logs the read.
func (s *LoggingSource) ReadDocument(ctx context.Context, path string) (doc *genindex.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.HTML)
		}
		s.logger.Debug("read",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadDocument(ctx, path)
}
