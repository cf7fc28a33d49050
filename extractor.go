package genindex

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the trimmed content of the page's title element.
	// Empty when the page has none.
	Title string

	// Body is the visible text following the first top-level heading,
	// or the whole body's visible text when there is no heading.
	// Text nodes are joined with single spaces.
	Body string
}

// Extractor extracts the title and body text from HTML pages.
type Extractor interface {
	// Extract parses raw HTML and returns its title and body text.
	// Malformed markup must not cause an error.
	Extract(html string) (*ExtractResult, error)
}
