package genindex

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Default exclusion settings.
const DefaultIgnoreKeyword = "component"

// DefaultIgnoreDirs lists directory names whose documents are never indexed.
var DefaultIgnoreDirs = []string{"images", "SupportHeaders"}

// SkipKind classifies why a document was excluded.
type SkipKind string

// SkipKind constants.
const (
	SkipKeyword   SkipKind = "keyword"
	SkipDirectory SkipKind = "directory"
	SkipPattern   SkipKind = "pattern"
	SkipDuplicate SkipKind = "duplicate"
)

// SkipReason describes why a document was excluded.
type SkipReason struct {
	Kind SkipKind

	// Match is the keyword, directory or pattern that triggered the skip.
	Match string
}

// SkipFilter decides which discovered documents are excluded from the index.
type SkipFilter struct {
	// Keyword excludes files whose name contains it, case-insensitively.
	// Empty disables the check.
	Keyword string

	// Dirs excludes files located under a directory with one of these names.
	Dirs []string

	// Exclude patterns are matched against the slash-separated path
	// relative to the content root.
	Exclude []*regexp.Regexp
}

// Skip reports whether the document at filename under root must be excluded.
// Checks run in order: filename keyword, ignored directory, exclude pattern.
// If the filter is nil, nothing is skipped.
func (f *SkipFilter) Skip(root, filename string) (SkipReason, bool) {
	if f == nil {
		return SkipReason{}, false
	}

	base := filepath.Base(filename)
	if f.Keyword != "" && strings.Contains(strings.ToLower(base), strings.ToLower(f.Keyword)) {
		return SkipReason{Kind: SkipKeyword, Match: f.Keyword}, true
	}

	rel := relativeSlash(root, filename)

	// Directory segments only; the last element is the filename.
	segments := strings.Split(rel, "/")
	segments = segments[:len(segments)-1]
	for _, dir := range f.Dirs {
		for i, seg := range segments {
			// The leading segment is a path prefix and compares case-insensitively.
			if seg == dir || (i == 0 && strings.EqualFold(seg, dir)) {
				return SkipReason{Kind: SkipDirectory, Match: dir}, true
			}
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(rel) {
			return SkipReason{Kind: SkipPattern, Match: re.String()}, true
		}
	}

	return SkipReason{}, false
}

func relativeSlash(root, filename string) string {
	rel, err := filepath.Rel(root, filename)
	if err != nil {
		rel = filename
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
}
