package harvest

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/pmilosz/leadharvest/bloom"
)

// LinkPriority orders candidate contact pages (higher = fetched first).
type LinkPriority int

// Priority levels for contact-page candidates.
const (
	PriorityOther   LinkPriority = 10
	PriorityAbout   LinkPriority = 50
	PriorityContact LinkPriority = 100
)

// candidateLink is a contact-page candidate queued for fetching.
type candidateLink struct {
	url      string
	priority LinkPriority
}

// Frontier is an in-memory queue of contact-page candidates with priority
// ordering and Bloom-filter deduplication. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// PushURL adds a candidate to the frontier.
// Returns false if the URL has already been seen. Fragments are stripped
// first, so URLs differing only by fragment count as duplicates.
func (f *Frontier) PushURL(rawURL string, priority LinkPriority) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(rawURL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	heap.Push(f.queue, candidateLink{url: url, priority: priority})
	return true
}

// MarkSeen records a URL as already fetched without queueing it.
// Used for the homepage, which is fetched before the frontier is filled.
func (f *Frontier) MarkSeen(rawURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen.Add(stripFragment(rawURL))
}

// PopURL returns the highest-priority candidate.
// The bool result is false if the frontier is empty.
func (f *Frontier) PopURL() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return "", false
	}
	link, _ := heap.Pop(f.queue).(candidateLink)
	return link.url, true
}

// Len returns the number of queued candidates.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been queued or fetched.
// Fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// linkHeap implements heap.Interface for candidateLink (max-heap).
type linkHeap []candidateLink

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	return h[i].priority > h[j].priority
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(candidateLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
