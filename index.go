package genindex

import (
	"bytes"
	"context"
	"encoding/json"
)

// Index is an ordered collection of records built during one run.
// Records keep the order in which they were added.
type Index struct {
	records []*Record
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{records: []*Record{}}
}

// Add appends a record.
func (x *Index) Add(r *Record) {
	x.records = append(x.records, r)
}

// Records returns the records in insertion order.
func (x *Index) Records() []*Record {
	return x.records
}

// Len returns the number of records.
func (x *Index) Len() int {
	return len(x.records)
}

// MarshalJSON encodes the index as a compact JSON array.
// HTML characters and non-ASCII text are written unescaped.
func (x *Index) MarshalJSON() ([]byte, error) {
	records := x.records
	if records == nil {
		records = []*Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// IndexWriter persists a complete index.
type IndexWriter interface {
	// WriteIndex serializes idx and replaces the file at path in one write.
	WriteIndex(ctx context.Context, path string, idx *Index) error
}

// Deduplicator detects records repeating an already indexed page.
type Deduplicator interface {
	// Add records the fingerprint of title and content.
	// Returns false if the pair has already been added.
	Add(title, content string) bool
}

// SitemapWriter publishes the URLs of an index as a sitemap.
type SitemapWriter interface {
	WriteSitemap(ctx context.Context, path string, idx *Index) error
}
