package design

import (
	"container/heap"
	"sort"
)

// ranked is a scored pair plus its generation order. Ordering by
// (score, fwd, seq) reproduces a stable sort by score over all pairs
// in the order they were generated.
type ranked struct {
	score float64
	fwd   int // index into the pruned forward list
	seq   int // order among the pairs of that forward candidate
	rev   *revEntry
	amp   int
}

func (a ranked) before(b ranked) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.fwd != b.fwd {
		return a.fwd < b.fwd
	}
	return a.seq < b.seq
}

// worstFirst is a max-heap: the root is the first pair to evict.
type worstFirst []ranked

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return h[j].before(h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x any)        { *h = append(*h, x.(ranked)) }
func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topN keeps the n best pairs offered so far.
type topN struct {
	n int
	h worstFirst
}

func newTopN(n int) *topN {
	return &topN{n: n, h: make(worstFirst, 0, n)}
}

func (t *topN) offer(r ranked) {
	if t.n <= 0 {
		return
	}
	if len(t.h) < t.n {
		heap.Push(&t.h, r)
		return
	}
	if r.before(t.h[0]) {
		t.h[0] = r
		heap.Fix(&t.h, 0)
	}
}

// mergeTop folds several selectors into a best-first slice of at most n.
func mergeTop(n int, parts []*topN) []ranked {
	var all []ranked
	for _, p := range parts {
		if p != nil {
			all = append(all, p.h...)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].before(all[j]) })
	if len(all) > n {
		all = all[:n]
	}
	return all
}
