package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/genindex"
)

// Ensure IndexWriter implements genindex.IndexWriter at compile time.
var _ genindex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter writes the index as a compact JSON file.
type IndexWriter struct{}

// NewIndexWriter creates a new IndexWriter.
func NewIndexWriter() *IndexWriter {
	return &IndexWriter{}
}

// WriteIndex serializes the whole index and replaces the file at path.
// Readers never observe a partially written file.
func (w *IndexWriter) WriteIndex(ctx context.Context, path string, idx *genindex.Index) error {
	data, err := idx.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing index %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic writes data to a temporary file next to path,
// then renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
