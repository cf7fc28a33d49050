// Package fs provides file-based discovery of documentation pages and
// storage for the generated index.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/genindex"
)

// Ensure Source implements genindex.DocumentSource at compile time.
var _ genindex.DocumentSource = (*Source)(nil)

// Source discovers documents in a directory tree by file extension.
type Source struct {
	ext string
}

// NewSource creates a Source matching files that end with ext.
// An empty ext selects genindex.DefaultExtension.
func NewSource(ext string) *Source {
	if ext == "" {
		ext = genindex.DefaultExtension
	}
	return &Source{ext: ext}
}

// Discover walks root recursively and returns the paths of matching files
// in lexical walk order. Unreadable subdirectories are skipped.
func (s *Source) Discover(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, genindex.Errorf(genindex.ENOTFOUND, "content root %q not found", root)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, genindex.Errorf(genindex.EINVALID, "content root %q is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), s.ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// ReadDocument loads the file at path. Invalid UTF-8 sequences are dropped.
func (s *Source) ReadDocument(ctx context.Context, path string) (*genindex.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &genindex.Document{
		Path: path,
		Name: filepath.Base(path),
		HTML: strings.ToValidUTF8(string(data), ""),
	}, nil
}
