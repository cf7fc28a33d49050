package fs

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/genindex"
)

// SitemapNamespace is the XML namespace of the sitemaps protocol.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ genindex.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter writes a sitemap.xml listing every indexed page.
type SitemapWriter struct {
	base *url.URL
}

// NewSitemapWriter creates a SitemapWriter resolving record URLs
// against baseURL, which must be absolute.
func NewSitemapWriter(baseURL string) (*SitemapWriter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, genindex.Errorf(genindex.EINVALID, "invalid sitemap base URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, genindex.Errorf(genindex.EINVALID, "sitemap base URL %q must be absolute", baseURL)
	}

	// Record URLs are relative to the base directory.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &SitemapWriter{base: u}, nil
}

// Loc returns the absolute URL of a record.
func (w *SitemapWriter) Loc(rec *genindex.Record) string {
	return w.base.ResolveReference(&url.URL{Path: rec.URL}).String()
}

// WriteSitemap writes a urlset with one entry per record to path.
func (w *SitemapWriter) WriteSitemap(ctx context.Context, path string, idx *genindex.Index) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)
	for _, rec := range idx.Records() {
		urlset.CreateElement("url").CreateElement("loc").SetText(w.Loc(rec))
	}
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing sitemap %s: %w", path, err)
	}
	return nil
}
