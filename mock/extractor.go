package mock

import "github.com/fwojciec/genindex"

var _ genindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of genindex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*genindex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*genindex.ExtractResult, error) {
	return e.ExtractFn(html)
}
