package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/genindex"
	"github.com/fwojciec/genindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("writes compact json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "search-index.json")
		idx := genindex.NewIndex()
		idx.Add(&genindex.Record{ID: "a/index.html", Title: "A", Content: "Alpha", URL: "a/"})

		err := fs.NewIndexWriter().WriteIndex(context.Background(), path, idx)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a/index.html","title":"A","content":"Alpha","url":"a/"}]`, string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "search-index.json")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

		err := fs.NewIndexWriter().WriteIndex(context.Background(), path, genindex.NewIndex())

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))

		// No temporary files are left behind.
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("fails when directory does not exist", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "search-index.json")

		err := fs.NewIndexWriter().WriteIndex(context.Background(), path, genindex.NewIndex())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing index")
	})
}
