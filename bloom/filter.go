// Package bloom provides probabilistic URL deduplication for bounded
// contact-page crawling.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs that have already been fetched or queued during a
// harvest run. A false positive causes a candidate contact page to be
// skipped, which is acceptable; false negatives cannot occur.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been seen.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
