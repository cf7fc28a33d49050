// Package config loads indexing settings and cleaning rules from YAML.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"slices"

	"github.com/fwojciec/genindex"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the index file name used when none is configured.
const DefaultOutput = "search-index.json"

// Config holds the settings of one indexing run.
type Config struct {
	Output        string   `yaml:"output"`
	SnippetLength int      `yaml:"snippet_length"`
	Extension     string   `yaml:"extension"`
	IgnoreKeyword string   `yaml:"ignore_keyword"`
	IgnoreDirs    []string `yaml:"ignore_dirs"`
	Exclude       []string `yaml:"exclude"`
	Cleaning      Cleaning `yaml:"cleaning"`
}

// Cleaning overrides the built-in boilerplate lists.
type Cleaning struct {
	Boilerplate []string    `yaml:"boilerplate"`
	Navigation  []string    `yaml:"navigation"`
	Markers     []string    `yaml:"markers"`
	Labels      []string    `yaml:"labels"`
	ExtraRules  []ExtraRule `yaml:"extra_rules"`
}

// ExtraRule replaces every match of Pattern in page bodies with Replacement.
type ExtraRule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output:        DefaultOutput,
		SnippetLength: genindex.DefaultMaxLength,
		Extension:     genindex.DefaultExtension,
		IgnoreKeyword: genindex.DefaultIgnoreKeyword,
		IgnoreDirs:    slices.Clone(genindex.DefaultIgnoreDirs),
		Cleaning: Cleaning{
			Boilerplate: slices.Clone(genindex.DefaultBoilerplate),
			Navigation:  slices.Clone(genindex.DefaultNavigation),
			Markers:     slices.Clone(genindex.DefaultMarkers),
			Labels:      slices.Clone(genindex.DefaultLabels),
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, genindex.Errorf(genindex.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "reading config file %q: %v", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys present in data replace the default value entirely; unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, genindex.Errorf(genindex.EINVALID, "parsing config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can produce a run.
func (c *Config) Validate() error {
	if c.Output == "" {
		return genindex.Errorf(genindex.EINVALID, "output path is required")
	}
	if c.SnippetLength <= 0 {
		return genindex.Errorf(genindex.EINVALID, "snippet length must be positive, got %d", c.SnippetLength)
	}
	if _, err := c.excludePatterns(); err != nil {
		return err
	}
	if _, err := c.extraRules(); err != nil {
		return err
	}
	return nil
}

// Cleaner builds the cleaner described by the settings.
func (c *Config) Cleaner() (*genindex.Cleaner, error) {
	extra, err := c.extraRules()
	if err != nil {
		return nil, err
	}

	return genindex.NewCleaner(genindex.CleanerConfig{
		Boilerplate: c.Cleaning.Boilerplate,
		Navigation:  c.Cleaning.Navigation,
		Markers:     c.Cleaning.Markers,
		Labels:      c.Cleaning.Labels,
		Extra:       extra,
		MaxLength:   c.SnippetLength,
	}), nil
}

// SkipFilter builds the exclusion filter described by the settings.
func (c *Config) SkipFilter() (*genindex.SkipFilter, error) {
	exclude, err := c.excludePatterns()
	if err != nil {
		return nil, err
	}

	return &genindex.SkipFilter{
		Keyword: c.IgnoreKeyword,
		Dirs:    c.IgnoreDirs,
		Exclude: exclude,
	}, nil
}

func (c *Config) excludePatterns() ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(c.Exclude))
	for _, expr := range c.Exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, genindex.Errorf(genindex.EINVALID, "invalid exclude pattern %q: %v", expr, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

func (c *Config) extraRules() ([]genindex.Rule, error) {
	rules := make([]genindex.Rule, 0, len(c.Cleaning.ExtraRules))
	for _, r := range c.Cleaning.ExtraRules {
		if r.Pattern == "" {
			return nil, genindex.Errorf(genindex.EINVALID, "extra rule pattern is required")
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, genindex.Errorf(genindex.EINVALID, "invalid extra rule pattern %q: %v", r.Pattern, err)
		}
		rules = append(rules, genindex.Replace{Pattern: re, With: r.Replacement})
	}
	return rules, nil
}
