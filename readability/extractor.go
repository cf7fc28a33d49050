package readability

import (
	"strings"

	"github.com/fwojciec/genindex"
	gengoquery "github.com/fwojciec/genindex/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements genindex.Extractor at compile time.
var _ genindex.Extractor = (*Extractor)(nil)

// Extractor isolates the article with go-readability before collecting
// the text that follows its first heading.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and article text.
// The title is read from the page's title element, not readability's guess.
func (e *Extractor) Extract(rawHTML string) (*genindex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, genindex.Errorf(genindex.EINVALID, "empty HTML input")
	}

	page, err := gengoquery.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "failed to parse HTML: %v", err)
	}
	title := gengoquery.Title(page)

	// Readability rewrites the tree it is given, so the title is read first.
	article, err := readability.FromDocument(page.Get(0), nil)
	if err != nil {
		return nil, err
	}

	content, err := gengoquery.Parse(strings.NewReader(article.Content))
	if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "failed to parse article: %v", err)
	}

	return &genindex.ExtractResult{
		Title: title,
		Body:  gengoquery.TextAfterHeading(content.Find("body").First()),
	}, nil
}
