// Package build runs the indexing pipeline over a content root.
package build

import (
	"context"
	"fmt"

	"github.com/fwojciec/genindex"
)

// Builder turns every document under Root into an index record.
// Documents are processed one at a time in discovery order; a failure in one
// document is reported and never stops the run.
type Builder struct {
	Root      string
	Source    genindex.DocumentSource
	Filter    *genindex.SkipFilter
	Extractor genindex.Extractor
	Cleaner   *genindex.Cleaner

	// Dedupe is optional. When set, pages repeating an indexed page are skipped.
	Dedupe genindex.Deduplicator

	// Progress is optional and called once per discovered document.
	Progress genindex.ProgressFunc
}

// Run discovers, filters, extracts and cleans all documents and returns
// the resulting index. Only discovery failures and cancellation are
// returned as errors.
func (b *Builder) Run(ctx context.Context) (*genindex.Index, error) {
	paths, err := b.Source.Discover(ctx, b.Root)
	if err != nil {
		return nil, err
	}

	idx := genindex.NewIndex()
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := genindex.Progress{
			Path:      path,
			Completed: i + 1,
			Total:     len(paths),
		}

		if reason, skip := b.Filter.Skip(b.Root, path); skip {
			p.Status = genindex.StatusSkipped
			p.Reason = reason
			b.report(p)
			continue
		}

		rec, err := b.process(ctx, path)
		if err != nil {
			p.Status = genindex.StatusFailed
			p.Error = err
			b.report(p)
			continue
		}

		if b.Dedupe != nil && !b.Dedupe.Add(rec.Title, rec.Content) {
			p.Status = genindex.StatusSkipped
			p.Reason = genindex.SkipReason{Kind: genindex.SkipDuplicate}
			b.report(p)
			continue
		}

		idx.Add(rec)
		p.Status = genindex.StatusProcessed
		p.Record = rec
		b.report(p)
	}

	return idx, nil
}

// process builds the record for a single document. Panics raised while
// parsing are converted to errors so they stay within the file boundary.
func (b *Builder) process(ctx context.Context, path string) (rec *genindex.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = genindex.Errorf(genindex.EINTERNAL, "panic while processing: %v", r)
		}
	}()

	doc, err := b.Source.ReadDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	result, err := b.Extractor.Extract(doc.HTML)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	title := result.Title
	if title == "" {
		title = doc.Name
	}

	title, content := b.Cleaner.Clean(title, result.Body)
	if title == "" {
		title = doc.Name
	}

	return genindex.NewRecord(b.Root, path, title, content)
}

func (b *Builder) report(p genindex.Progress) {
	if b.Progress != nil {
		b.Progress(p)
	}
}
