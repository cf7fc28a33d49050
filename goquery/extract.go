package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HeadingSelector locates the heading that starts a page's main text.
const HeadingSelector = "h1"

// hiddenParents are elements whose text is never visible.
var hiddenParents = map[string]bool{
	"script": true,
	"style":  true,
}

// Parse reads an HTML document with scripting disabled, so the content of
// noscript elements is parsed as markup rather than kept as raw text.
func Parse(r io.Reader) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// Title returns the trimmed text of the document's first title element.
func Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// TextAfterHeading returns the text of the first heading inside scope and of
// every text and comment node that follows it in document order, joined with
// single spaces. Comments carry the banner markers of exported handbook
// pages. Text directly inside script and style elements is skipped.
// Without a heading, the visible text of scope is returned, comments
// excluded.
func TextAfterHeading(scope *goquery.Selection) string {
	var parts []string

	heading := scope.Find(HeadingSelector).First()
	if heading.Length() == 0 {
		w := walker{collecting: true, parts: &parts}
		for _, n := range scope.Nodes {
			w.walk(n)
		}
		return strings.Join(parts, " ")
	}

	// Text after the heading may live outside scope, so walk the whole tree
	// and start collecting once the heading is reached.
	start := heading.Get(0)
	root := start
	for root.Parent != nil {
		root = root.Parent
	}
	w := walker{start: start, comments: true, parts: &parts}
	w.walk(root)

	return strings.Join(parts, " ")
}

// walker appends trimmed node text in document order. Nodes are ignored
// until start is reached unless collecting is already set.
type walker struct {
	start      *html.Node
	collecting bool
	comments   bool
	parts      *[]string
}

func (w *walker) walk(n *html.Node) {
	if n == w.start {
		w.collecting = true
	}

	if w.collecting && w.wants(n) {
		if text := strings.TrimSpace(n.Data); text != "" {
			*w.parts = append(*w.parts, text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *walker) wants(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return !isHidden(n.Parent)
	case html.CommentNode:
		return w.comments && !isHidden(n.Parent)
	default:
		return false
	}
}

func isHidden(parent *html.Node) bool {
	return parent != nil && parent.Type == html.ElementNode && hiddenParents[parent.Data]
}
