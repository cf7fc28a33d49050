// Package slog provides logging decorators for genindex services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/genindex"
)

// Ensure LoggingExtractor implements genindex.Extractor.
var _ genindex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   genindex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next genindex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *genindex.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var bodyBytes int
		if result != nil {
			title = result.Title
			bodyBytes = len(result.Body)
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"title", title,
			"body_bytes", bodyBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
