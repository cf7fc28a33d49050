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

// writeFile creates a file and its parent directories under root.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("finds matching files recursively in walk order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "index.html", "")
		writeFile(t, root, "a/page.html", "")
		writeFile(t, root, "a/b/deep.html", "")
		writeFile(t, root, "a/notes.txt", "")
		writeFile(t, root, "style.css", "")

		paths, err := fs.NewSource("").Discover(context.Background(), root)

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a", "b", "deep.html"),
			filepath.Join(root, "a", "page.html"),
			filepath.Join(root, "index.html"),
		}, paths)
	})

	t.Run("matches custom extension", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "a.htm", "")
		writeFile(t, root, "b.html", "")

		paths, err := fs.NewSource(".htm").Discover(context.Background(), root)

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.htm")}, paths)
	})

	t.Run("ignores directories named like pages", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "folder.html"), 0755))

		paths, err := fs.NewSource("").Discover(context.Background(), root)

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("returns not found for missing root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource("").Discover(context.Background(), filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Equal(t, genindex.ENOTFOUND, genindex.ErrorCode(err))
	})

	t.Run("rejects file as root", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.html", "")

		_, err := fs.NewSource("").Discover(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, genindex.EINVALID, genindex.ErrorCode(err))
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "a.html", "")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewSource("").Discover(ctx, root)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSource_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads content and name", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "docs/setup.html", "<title>Setup</title>")

		doc, err := fs.NewSource("").ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, "setup.html", doc.Name)
		assert.Equal(t, "<title>Setup</title>", doc.HTML)
	})

	t.Run("drops invalid byte sequences", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "bad.html", "caf\xc3\xa9 \xff\xfeok")

		doc, err := fs.NewSource("").ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "café ok", doc.HTML)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource("").ReadDocument(context.Background(), filepath.Join(t.TempDir(), "nope.html"))

		require.Error(t, err)
	})
}
