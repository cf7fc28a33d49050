package mock

import (
	"context"

	"github.com/fwojciec/genindex"
)

// Compile-time interface verification.
var (
	_ genindex.DocumentSource = (*DocumentSource)(nil)
	_ genindex.Deduplicator   = (*Deduplicator)(nil)
)

// DocumentSource is a mock implementation of genindex.DocumentSource.
type DocumentSource struct {
	DiscoverFn     func(ctx context.Context, root string) ([]string, error)
	ReadDocumentFn func(ctx context.Context, path string) (*genindex.Document, error)
}

func (s *DocumentSource) Discover(ctx context.Context, root string) ([]string, error) {
	return s.DiscoverFn(ctx, root)
}

func (s *DocumentSource) ReadDocument(ctx context.Context, path string) (*genindex.Document, error) {
	return s.ReadDocumentFn(ctx, path)
}

// Deduplicator is a mock implementation of genindex.Deduplicator.
type Deduplicator struct {
	AddFn func(title, content string) bool
}

func (d *Deduplicator) Add(title, content string) bool {
	return d.AddFn(title, content)
}
