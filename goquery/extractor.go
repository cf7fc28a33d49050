// Package goquery extracts page titles and body text using goquery.
package goquery

import (
	"strings"

	"github.com/fwojciec/genindex"
)

// Ensure Extractor implements genindex.Extractor at compile time.
var _ genindex.Extractor = (*Extractor)(nil)

// Extractor reads the title element and the text following the first
// top-level heading of the body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the title and body text.
// The HTML5 parser recovers from malformed markup, so only reader
// failures produce an error.
func (e *Extractor) Extract(rawHTML string) (*genindex.ExtractResult, error) {
	doc, err := Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "failed to parse HTML: %v", err)
	}

	return &genindex.ExtractResult{
		Title: Title(doc),
		Body:  TextAfterHeading(doc.Find("body").First()),
	}, nil
}
