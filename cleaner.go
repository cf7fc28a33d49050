package genindex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLength is the default maximum snippet length in characters.
const DefaultMaxLength = 200

// TitleCutset holds the separator punctuation trimmed from the body after
// the title has been removed from it.
const TitleCutset = " -–|,:/"

// Default boilerplate removed by the cleaner.
var (
	// DefaultBoilerplate phrases are removed verbatim from titles and bodies.
	DefaultBoilerplate = []string{
		"Oracle System Handbook - ISO 7.0 May 2018 Internal/Partner Edition Home",
		"Oracle System Handbook - ISO 7.0 May 2018 Internal/Partner Edition",
		"Home |",
	}

	// DefaultNavigation lines are removed verbatim from bodies.
	DefaultNavigation = []string{
		"Current Systems | Former STK Products | EOL Systems | Components | General Info | Search | Feedback",
	}

	// DefaultMarkers are banner and footer phrases removed as whole words.
	DefaultMarkers = []string{
		"END OF MAIN CONTENT",
		"PAGE FOOTER",
		"PAGE HEADER",
		"TABLE BEGINNING",
		"TABLE BEGIN",
		"TABLE BEG",
	}

	// DefaultLabels are metadata labels replaced by a space.
	// A trailing colon also consumes the whitespace around it.
	DefaultLabels = []string{
		"Keywords:",
		"Solution Type",
		"Problem Resolution",
		"Sure Solution",
	}
)

var (
	lastModifiedPattern = regexp.MustCompile(`(?i)(Last\s+Modified\s+Date)(?:[:\s\-]*\d+(?:\.\d+)?)?`)
	dividerPattern      = regexp.MustCompile(`={3,}|-{3,}|_{3,}|\*{3,}`)
	titleWordPattern    = regexp.MustCompile(`[\p{L}\p{N}]+`)
)

// Rule is one step of a cleaning table.
type Rule interface {
	// Apply rewrites text. Title is the already cleaned page title.
	Apply(text, title string) string
}

// Replace substitutes every match of Pattern with With.
// With may reference submatches using regexp template syntax.
type Replace struct {
	Pattern *regexp.Regexp
	With    string

	// Trim strips leading and trailing whitespace after replacing.
	Trim bool
}

// Apply implements Rule.
func (r Replace) Apply(text, _ string) string {
	text = r.Pattern.ReplaceAllString(text, r.With)
	if r.Trim {
		text = strings.TrimSpace(text)
	}
	return text
}

// Bounded substitutes every match of Pattern that stands on word boundaries
// with the literal With. Word characters are Unicode letters, digits and
// underscore. The boundaries are checked around the first submatch if the
// pattern has one, otherwise around the whole match, and only on the sides
// where that span starts or ends with a word character.
type Bounded struct {
	Pattern *regexp.Regexp
	With    string

	// Trim strips leading and trailing whitespace after replacing.
	Trim bool
}

// Apply implements Rule.
func (r Bounded) Apply(text, _ string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos <= len(text) {
		loc := r.Pattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		spanStart, spanEnd := start, end
		if len(loc) >= 4 && loc[2] >= 0 {
			spanStart, spanEnd = pos+loc[2], pos+loc[3]
		}

		if end > start && onWordBoundary(text, spanStart, spanEnd) {
			b.WriteString(text[last:start])
			b.WriteString(r.With)
			last, pos = end, end
			continue
		}

		// Retry from the next character.
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}
	b.WriteString(text[last:])

	text = b.String()
	if r.Trim {
		text = strings.TrimSpace(text)
	}
	return text
}

func onWordBoundary(text string, start, end int) bool {
	if first, _ := utf8.DecodeRuneInString(text[start:end]); isWordRune(first) && start > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(prev) {
			return false
		}
	}
	if last, _ := utf8.DecodeLastRuneInString(text[start:end]); isWordRune(last) && end < len(text) {
		if next, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Collapse reduces every whitespace run to a single space and trims the ends.
type Collapse struct{}

// Apply implements Rule.
func (Collapse) Apply(text, _ string) string {
	return strings.Join(strings.Fields(text), " ")
}

// DropTitle removes the first loose occurrence of the title from the text:
// the title's words in order, separated by any non-alphanumeric run, matched
// case-insensitively on word boundaries. Cutset is then trimmed from both
// ends of the result.
type DropTitle struct {
	Cutset string
}

// Apply implements Rule.
func (r DropTitle) Apply(text, title string) string {
	re := TitlePattern(title)
	if re == nil {
		return text
	}
	if loc := re.FindStringSubmatchIndex(text); loc != nil {
		text = text[:loc[2]] + text[loc[3]:]
	}
	return strings.Trim(text, r.Cutset)
}

// TitlePattern returns a pattern whose first submatch is a loose occurrence
// of title, or nil if the title has no letters or digits.
func TitlePattern(title string) *regexp.Regexp {
	words := titleWordPattern.FindAllString(title, -1)
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}

	// RE2 has no Unicode-aware \b, so boundaries are matched as explicit
	// non-word characters outside the submatch.
	expr := `(?i)(?:^|[^\p{L}\p{N}_])(` + strings.Join(words, `[^\p{L}\p{N}]+`) + `)(?:[^\p{L}\p{N}_]|$)`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// Literal returns a rule replacing every exact occurrence of s.
func Literal(s, with string, trim bool) Replace {
	return Replace{Pattern: regexp.MustCompile(regexp.QuoteMeta(s)), With: with, Trim: trim}
}

// Phrases returns a rule replacing any of the phrases, case-insensitively
// and on word boundaries, with any whitespace run between their words.
// A trailing colon also consumes the whitespace around it.
func Phrases(phrases []string, with string, trim bool) Bounded {
	alts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if expr := phraseExpr(p); expr != "" {
			alts = append(alts, expr)
		}
	}
	expr := `(?i)(?:` + strings.Join(alts, "|") + `)`
	if len(alts) == 0 {
		expr = `[^\x00-\x{10FFFF}]`
	}
	return Bounded{
		Pattern: regexp.MustCompile(expr),
		With:    with,
		Trim:    trim,
	}
}

func phraseExpr(phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return ""
	}

	last := len(fields) - 1
	colon := strings.HasSuffix(fields[last], ":")
	if colon {
		fields[last] = strings.TrimSuffix(fields[last], ":")
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(`\s+`)
		}
		b.WriteString(regexp.QuoteMeta(f))
	}
	if colon {
		b.WriteString(`\s*:\s*`)
	}
	return b.String()
}

// CleanerConfig lists the boilerplate removed by a cleaner built with NewCleaner.
type CleanerConfig struct {
	Boilerplate []string
	Navigation  []string
	Markers     []string
	Labels      []string

	// Extra rules run after the built-in ones, before the final collapse.
	Extra []Rule

	// MaxLength bounds the snippet length in characters. Zero means unbounded.
	MaxLength int
}

// DefaultCleanerConfig returns the built-in boilerplate lists.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		Boilerplate: DefaultBoilerplate,
		Navigation:  DefaultNavigation,
		Markers:     DefaultMarkers,
		Labels:      DefaultLabels,
		MaxLength:   DefaultMaxLength,
	}
}

// Cleaner turns extracted text into a de-boilerplated snippet by applying
// ordered rule tables. It holds no state between calls.
type Cleaner struct {
	TitleRules []Rule
	BodyRules  []Rule
	MaxLength  int
}

// NewCleaner builds the standard rule tables from cfg.
func NewCleaner(cfg CleanerConfig) *Cleaner {
	c := &Cleaner{MaxLength: cfg.MaxLength}

	for _, bp := range cfg.Boilerplate {
		c.TitleRules = append(c.TitleRules, Literal(bp, "", true))
	}
	c.TitleRules = append(c.TitleRules, Collapse{})

	c.BodyRules = append(c.BodyRules, Collapse{})
	for _, bp := range cfg.Boilerplate {
		c.BodyRules = append(c.BodyRules, Literal(bp, " ", true))
	}
	c.BodyRules = append(c.BodyRules,
		DropTitle{Cutset: TitleCutset},
		Bounded{Pattern: lastModifiedPattern, Trim: true},
		Replace{Pattern: dividerPattern, With: " "},
	)
	if len(cfg.Markers) > 0 {
		c.BodyRules = append(c.BodyRules, Phrases(cfg.Markers, "", true))
	}
	for _, nav := range cfg.Navigation {
		c.BodyRules = append(c.BodyRules, Literal(nav, " ", true))
	}
	if len(cfg.Labels) > 0 {
		c.BodyRules = append(c.BodyRules, Phrases(cfg.Labels, " ", false))
	}
	c.BodyRules = append(c.BodyRules, cfg.Extra...)
	c.BodyRules = append(c.BodyRules, Collapse{})

	return c
}

// Clean returns the cleaned title and the body snippet.
// The same input always yields the same output.
func (c *Cleaner) Clean(title, body string) (string, string) {
	for _, r := range c.TitleRules {
		title = r.Apply(title, "")
	}
	for _, r := range c.BodyRules {
		body = r.Apply(body, title)
	}
	return title, Truncate(body, c.MaxLength)
}

// Truncate shortens s to at most n characters. It may cut mid-word.
// A non-positive n leaves s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
