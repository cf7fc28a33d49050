package genindex

import (
	"path"
	"path/filepath"
	"strings"
)

// IndexFile is the default index document name stripped from record URLs.
const IndexFile = "index.html"

// Record is the indexed representation of a document.
type Record struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// NewRecord builds a record for the document at filename under root.
//
// The ID is the path relative to root in the platform's separator
// convention. The URL is derived from it with RecordURL.
func NewRecord(root, filename, title, content string) (*Record, error) {
	rel, err := filepath.Rel(root, filename)
	if err != nil {
		return nil, Errorf(EINVALID, "path %q is not under %q: %v", filename, root, err)
	}

	return &Record{
		ID:      rel,
		Title:   title,
		Content: content,
		URL:     RecordURL(rel),
	}, nil
}

// RecordURL converts a root-relative path to its index URL: a final
// index document segment is dropped and separators become forward slashes.
// Example: guides\setup\index.html → guides/setup/
func RecordURL(rel string) string {
	u := strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	if dir, file := path.Split(u); file == IndexFile {
		return dir
	}
	return u
}
