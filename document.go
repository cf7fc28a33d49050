package genindex

import "context"

// DefaultExtension is the file extension of indexed documents.
const DefaultExtension = ".html"

// Document represents one HTML page found under the content root.
type Document struct {
	// Path is the filesystem path as produced by discovery.
	Path string

	// Name is the base filename, used as the fallback title.
	Name string

	// HTML is the page source with invalid UTF-8 sequences dropped.
	HTML string
}

// DocumentSource discovers and reads documents from storage.
type DocumentSource interface {
	// Discover returns the paths of all documents under root,
	// in traversal order.
	Discover(ctx context.Context, root string) ([]string, error)

	// ReadDocument loads a single document.
	ReadDocument(ctx context.Context, path string) (*Document, error)
}
