package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/genindex"
	"github.com/fwojciec/genindex/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults without a path", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load("")

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, "search-index.json", cfg.Output)
		assert.Equal(t, 200, cfg.SnippetLength)
		assert.Equal(t, []string{"images", "SupportHeaders"}, cfg.IgnoreDirs)
	})

	t.Run("overrides only the keys present in the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "genindex.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
snippet_length: 80
ignore_dirs: [assets]
cleaning:
  markers: [DRAFT]
  extra_rules:
    - pattern: '\[\d+\]'
      replacement: ""
`), 0644))

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 80, cfg.SnippetLength)
		assert.Equal(t, []string{"assets"}, cfg.IgnoreDirs)
		assert.Equal(t, []string{"DRAFT"}, cfg.Cleaning.Markers)
		assert.Equal(t, genindex.DefaultLabels, cfg.Cleaning.Labels)
		assert.Equal(t, genindex.DefaultIgnoreKeyword, cfg.IgnoreKeyword)
		assert.Equal(t, []config.ExtraRule{{Pattern: `\[\d+\]`}}, cfg.Cleaning.ExtraRules)
	})

	t.Run("returns not found for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, genindex.ENOTFOUND, genindex.ErrorCode(err))
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{name: "unknown key", yaml: "snippet_lenght: 10", msg: "parsing config"},
		{name: "non-positive snippet length", yaml: "snippet_length: 0", msg: "snippet length must be positive"},
		{name: "empty output", yaml: `output: ""`, msg: "output path is required"},
		{name: "bad exclude pattern", yaml: "exclude: ['(']", msg: "invalid exclude pattern"},
		{name: "bad extra rule", yaml: "cleaning: {extra_rules: [{pattern: '['}]}", msg: "invalid extra rule pattern"},
		{name: "empty extra rule", yaml: "cleaning: {extra_rules: [{replacement: x}]}", msg: "extra rule pattern is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(tt.yaml))

			require.Error(t, err)
			assert.Equal(t, genindex.EINVALID, genindex.ErrorCode(err))
			assert.Contains(t, genindex.ErrorMessage(err), tt.msg)
		})
	}

	t.Run("accepts an empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse(nil)

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestConfig_Cleaner(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
snippet_length: 12
cleaning:
  extra_rules:
    - pattern: 'Copyright \d{4}'
      replacement: " "
`))
	require.NoError(t, err)

	cleaner, err := cfg.Cleaner()
	require.NoError(t, err)

	_, body := cleaner.Clean("Page", "Alpha Copyright 2018 beta gamma delta")
	assert.Equal(t, "Alpha beta g", body)
}

func TestConfig_SkipFilter(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
ignore_keyword: draft
exclude: ['^archive/']
`))
	require.NoError(t, err)

	filter, err := cfg.SkipFilter()
	require.NoError(t, err)

	root := "site"
	reason, skip := filter.Skip(root, filepath.Join(root, "archive", "old.html"))
	assert.True(t, skip)
	assert.Equal(t, genindex.SkipPattern, reason.Kind)

	reason, skip = filter.Skip(root, filepath.Join(root, "Draft-notes.html"))
	assert.True(t, skip)
	assert.Equal(t, genindex.SkipReason{Kind: genindex.SkipKeyword, Match: "draft"}, reason)

	_, skip = filter.Skip(root, filepath.Join(root, "component.html"))
	assert.False(t, skip)
}
