package mock

import (
	"context"

	"github.com/fwojciec/genindex"
)

var _ genindex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of genindex.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, path string, idx *genindex.Index) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, path string, idx *genindex.Index) error {
	return w.WriteIndexFn(ctx, path, idx)
}

var _ genindex.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of genindex.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, path string, idx *genindex.Index) error
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, path string, idx *genindex.Index) error {
	return w.WriteSitemapFn(ctx, path, idx)
}
