package trafilatura

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/genindex"
	gengoquery "github.com/fwojciec/genindex/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements genindex.Extractor at compile time.
var _ genindex.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to find the main content node before
// collecting the text that follows its first heading.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*genindex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, genindex.Errorf(genindex.EINVALID, "empty HTML input")
	}

	page, err := gengoquery.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "failed to parse HTML: %v", err)
	}
	title := gengoquery.Title(page)

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	// Trafilatura prunes the tree it is given, so the title is read first.
	result, err := trafilatura.ExtractDocument(page.Get(0), opts)
	if err != nil {
		return nil, err
	}

	var body string
	if result.ContentNode != nil {
		body = gengoquery.TextAfterHeading(goquery.NewDocumentFromNode(result.ContentNode).Selection)
	}

	return &genindex.ExtractResult{
		Title: title,
		Body:  body,
	}, nil
}
