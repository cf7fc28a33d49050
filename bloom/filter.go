// Package bloom detects duplicate pages using Bloom filters over xxhash
// content fingerprints.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/genindex"
)

// Fingerprint hashes a record's title and content.
func Fingerprint(title, content string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(content)
	return d.Sum64()
}

// Filter wraps a Bloom filter over fingerprints.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a fingerprint to the filter.
func (f *Filter) Add(fp uint64) {
	f.f.Add(binary.BigEndian.AppendUint64(nil, fp))
}

// Test returns true if the fingerprint might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(fp uint64) bool {
	return f.f.Test(binary.BigEndian.AppendUint64(nil, fp))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Ensure Set implements genindex.Deduplicator at compile time.
var _ genindex.Deduplicator = (*Set)(nil)

// Set tracks the pages already indexed in a run. The Bloom filter answers
// the common never-seen case without touching the exact key set; only its
// positives are confirmed against the stored keys, so neither a false
// positive nor a fingerprint collision drops a distinct page.
type Set struct {
	filter *Filter
	seen   map[string]struct{}
}

// NewSet creates a Set sized for n expected pages.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		filter: NewFilter(n, fpRate),
		seen:   make(map[string]struct{}, n),
	}
}

// Add records the page and returns false if an identical one was added before.
func (s *Set) Add(title, content string) bool {
	fp := Fingerprint(title, content)
	key := title + "\x00" + content

	if s.filter.Test(fp) {
		if _, ok := s.seen[key]; ok {
			return false
		}
	} else {
		s.filter.Add(fp)
	}
	s.seen[key] = struct{}{}
	return true
}

// Len returns the number of distinct pages added.
func (s *Set) Len() int {
	return len(s.seen)
}

// EstimatedCount returns the Bloom filter's estimate of distinct pages.
func (s *Set) EstimatedCount() uint {
	return s.filter.EstimatedCount()
}
